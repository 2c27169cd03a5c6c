package schedule

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	pickupDomain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
)

type DeleteScheduleResult struct {
	PickupsAffected int `json:"pickups_affected"`
}

type DeleteSchedule struct {
	repo      pickupDomain.Repository
	impact    *CheckScheduleImpact
	recompute *ucPickup.RecomputeOutsideHours
	cache     ucPickup.AvailabilityCache
	audit     *audit.Dispatcher
}

func NewDeleteSchedule(
	repo pickupDomain.Repository,
	impact *CheckScheduleImpact,
	recompute *ucPickup.RecomputeOutsideHours,
	cache ucPickup.AvailabilityCache,
	auditD *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:      repo,
		impact:    impact,
		recompute: recompute,
		cache:     cache,
		audit:     auditD,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	locationID uint,
	staffID uint,
	scheduleID uint,
) (*DeleteScheduleResult, error) {

	if _, err := uc.repo.GetSchedule(ctx, locationID, scheduleID); err != nil {
		return nil, httperr.ErrBusiness("schedule_not_found")
	}

	affected, err := uc.impact.Deletion(ctx, locationID, scheduleID)
	if err != nil {
		return nil, err
	}

	err = uc.repo.InTx(ctx, func(tx pickupDomain.Repository) error {
		return tx.DeleteSchedule(ctx, locationID, scheduleID)
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.recompute.Execute(ctx, locationID); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateLocation(ctx, locationID)
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: locationID,
		UserID:     &staffID,
		Action:     "schedule_deleted",
		Entity:     "schedule",
		EntityID:   &scheduleID,
	})

	return &DeleteScheduleResult{PickupsAffected: affected}, nil
}
