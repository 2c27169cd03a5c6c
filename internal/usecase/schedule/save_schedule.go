package schedule

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	pickupDomain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
)

// ======================================================
// USE CASE
// ======================================================

type SaveScheduleResult struct {
	Schedule        *models.Schedule `json:"schedule"`
	PickupsAffected int              `json:"pickups_affected"`
}

// SaveSchedule creates or replaces one weekly-hours schedule. The impact
// count is computed against the pre-commit state so the caller can surface
// the warning it already acknowledged; the commit itself runs in one
// transaction, then the outside-hours counter and the slot cache are
// refreshed.
type SaveSchedule struct {
	repo      pickupDomain.Repository
	impact    *CheckScheduleImpact
	recompute *ucPickup.RecomputeOutsideHours
	cache     ucPickup.AvailabilityCache
	audit     *audit.Dispatcher
}

func NewSaveSchedule(
	repo pickupDomain.Repository,
	impact *CheckScheduleImpact,
	recompute *ucPickup.RecomputeOutsideHours,
	cache ucPickup.AvailabilityCache,
	auditD *audit.Dispatcher,
) *SaveSchedule {
	return &SaveSchedule{
		repo:      repo,
		impact:    impact,
		recompute: recompute,
		cache:     cache,
		audit:     auditD,
	}
}

// Create adds a new schedule for the location.
func (uc *SaveSchedule) Create(
	ctx context.Context,
	locationID uint,
	staffID uint,
	in ScheduleInput,
) (*SaveScheduleResult, error) {
	return uc.save(ctx, locationID, staffID, in, 0)
}

// Update replaces the schedule identified by scheduleID.
func (uc *SaveSchedule) Update(
	ctx context.Context,
	locationID uint,
	staffID uint,
	scheduleID uint,
	in ScheduleInput,
) (*SaveScheduleResult, error) {
	if _, err := uc.repo.GetSchedule(ctx, locationID, scheduleID); err != nil {
		return nil, httperr.ErrBusiness("schedule_not_found")
	}
	return uc.save(ctx, locationID, staffID, in, scheduleID)
}

func (uc *SaveSchedule) save(
	ctx context.Context,
	locationID uint,
	staffID uint,
	in ScheduleInput,
	scheduleID uint,
) (*SaveScheduleResult, error) {

	if _, err := uc.repo.GetLocation(ctx, locationID); err != nil {
		return nil, httperr.ErrBusiness("location_not_found")
	}

	model, err := in.ToModel(locationID, scheduleID)
	if err != nil {
		return nil, err
	}

	affected, err := uc.impact.Change(ctx, locationID, in, scheduleID)
	if err != nil {
		return nil, err
	}

	err = uc.repo.InTx(ctx, func(tx pickupDomain.Repository) error {
		if scheduleID == 0 {
			return tx.CreateSchedule(ctx, model)
		}
		return tx.ReplaceSchedule(ctx, model)
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

	action := "schedule_created"
	if scheduleID != 0 {
		action = "schedule_updated"
	}
	uc.audit.Dispatch(audit.Event{
		LocationID: locationID,
		UserID:     &staffID,
		Action:     action,
		Entity:     "schedule",
		EntityID:   &model.ID,
	})

	return &SaveScheduleResult{Schedule: model, PickupsAffected: affected}, nil
}
