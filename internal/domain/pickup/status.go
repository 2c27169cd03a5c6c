package pickup

import (
	"time"

	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func MarkPickedUp(p *models.Pickup) error {
	if p.IsPickedUp {
		return httperr.ErrBusiness("already_picked_up")
	}

	p.IsPickedUp = true
	p.NoShowAt = nil
	return nil
}

// MarkNoShow records that the household did not appear. Only meaningful
// once the window has closed.
func MarkNoShow(p *models.Pickup, now time.Time) error {
	if p.IsPickedUp {
		return httperr.ErrBusiness("already_picked_up")
	}
	if p.NoShowAt != nil {
		return httperr.ErrBusiness("already_no_show")
	}
	if now.Before(p.Latest) {
		return httperr.ErrBusiness("window_not_over")
	}

	p.NoShowAt = &now
	return nil
}

// CanReschedule guards staff rescheduling.
func CanReschedule(p *models.Pickup) error {
	if p.IsPickedUp {
		return httperr.ErrBusiness("already_picked_up")
	}
	return nil
}
