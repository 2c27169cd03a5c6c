package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type MarkPickedUp struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPickedUp(repo domain.Repository, auditD *audit.Dispatcher) *MarkPickedUp {
	return &MarkPickedUp{repo: repo, audit: auditD}
}

func (uc *MarkPickedUp) Execute(
	ctx context.Context,
	locationID uint,
	pickupID uint,
	staffID uint,
) (*models.Pickup, error) {

	p, err := uc.repo.GetPickup(ctx, locationID, pickupID)
	if err != nil {
		return nil, httperr.ErrBusiness("pickup_not_found")
	}

	if err := domain.MarkPickedUp(p); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePickup(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: locationID,
		UserID:     &staffID,
		Action:     "pickup_picked_up",
		Entity:     "pickup",
		EntityID:   &p.ID,
	})

	return p, nil
}
