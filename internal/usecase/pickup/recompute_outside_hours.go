package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
)

// RecomputeOutsideHours refreshes a location's denormalized counter of
// future pickups that fit no open schedule. The counter is a cache with
// this as its only write path; it is recomputed after every operation
// that can move pickups inside or outside hours.
type RecomputeOutsideHours struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewRecomputeOutsideHours(repo domain.Repository, clk clock.Clock) *RecomputeOutsideHours {
	return &RecomputeOutsideHours{repo: repo, clk: clk}
}

func (uc *RecomputeOutsideHours) Execute(
	ctx context.Context,
	locationID uint,
) (int, error) {

	schedules, err := uc.repo.ListSchedules(ctx, locationID)
	if err != nil {
		return 0, err
	}

	pickups, err := uc.repo.ListFutureActivePickups(ctx, locationID, uc.clk.Now())
	if err != nil {
		return 0, err
	}

	count := domain.CountOutsideHours(pickups, schedules)

	if err := uc.repo.SetOutsideHoursCount(ctx, locationID, count); err != nil {
		return 0, err
	}

	return count, nil
}
