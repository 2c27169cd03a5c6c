package schedule

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	pickupDomain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// CheckScheduleImpact is the warn-before-commit surface: it reports how
// many future, not picked up pickups would fall outside hours if a
// schedule were added, edited or deleted. A count is a successful
// computation, never an error.
type CheckScheduleImpact struct {
	repo pickupDomain.Repository
	clk  clock.Clock
}

func NewCheckScheduleImpact(repo pickupDomain.Repository, clk clock.Clock) *CheckScheduleImpact {
	return &CheckScheduleImpact{repo: repo, clk: clk}
}

// Change previews a create (excludeScheduleID zero) or an edit
// (excludeScheduleID set to the schedule being replaced).
func (uc *CheckScheduleImpact) Change(
	ctx context.Context,
	locationID uint,
	proposed ScheduleInput,
	excludeScheduleID uint,
) (int, error) {

	model, err := proposed.ToModel(locationID, excludeScheduleID)
	if err != nil {
		return 0, err
	}

	existing, err := uc.repo.ListSchedules(ctx, locationID)
	if err != nil {
		return 0, err
	}

	pickups, err := uc.repo.ListFutureActivePickups(ctx, locationID, uc.clk.Now())
	if err != nil {
		return 0, err
	}

	current, future := domain.ChangeSets(existing, *model, excludeScheduleID)
	return domain.CountAffectedByChange(current, future, pickups), nil
}

// Deletion previews removing a schedule entirely.
func (uc *CheckScheduleImpact) Deletion(
	ctx context.Context,
	locationID uint,
	scheduleID uint,
) (int, error) {

	toDelete, err := uc.repo.GetSchedule(ctx, locationID, scheduleID)
	if err != nil {
		return 0, httperr.ErrBusiness("schedule_not_found")
	}

	existing, err := uc.repo.ListSchedules(ctx, locationID)
	if err != nil {
		return 0, err
	}

	remaining := make([]models.Schedule, 0, len(existing))
	for _, s := range existing {
		if s.ID != scheduleID {
			remaining = append(remaining, s)
		}
	}

	pickups, err := uc.repo.ListFutureActivePickups(ctx, locationID, uc.clk.Now())
	if err != nil {
		return 0, err
	}

	return domain.CountAffectedByDeletion(*toDelete, remaining, pickups), nil
}
