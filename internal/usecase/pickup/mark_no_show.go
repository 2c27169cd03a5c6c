package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewMarkNoShow(repo domain.Repository, clk clock.Clock, auditD *audit.Dispatcher) *MarkNoShow {
	return &MarkNoShow{repo: repo, clk: clk, audit: auditD}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	locationID uint,
	pickupID uint,
	staffID uint,
) (*models.Pickup, error) {

	p, err := uc.repo.GetPickup(ctx, locationID, pickupID)
	if err != nil {
		return nil, httperr.ErrBusiness("pickup_not_found")
	}

	if err := domain.MarkNoShow(p, uc.clk.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePickup(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: locationID,
		UserID:     &staffID,
		Action:     "pickup_no_show",
		Entity:     "pickup",
		EntityID:   &p.ID,
	})

	return p, nil
}
