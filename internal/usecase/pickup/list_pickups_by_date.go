package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/dto"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
)

type ListPickupsByDate struct {
	repo domain.Repository
}

func NewListPickupsByDate(repo domain.Repository) *ListPickupsByDate {
	return &ListPickupsByDate{repo: repo}
}

func (uc *ListPickupsByDate) Execute(
	ctx context.Context,
	locationID uint,
	dateStr string,
) ([]dto.PickupListDTO, error) {

	date, err := clock.ParseLocalDate(dateStr)
	if err != nil {
		return nil, httperr.ErrField("date", "invalid_date", "Date must be YYYY-MM-DD.")
	}

	schedules, err := uc.repo.ListSchedules(ctx, locationID)
	if err != nil {
		return nil, err
	}

	pickups, err := uc.repo.ListPickupsForPeriod(
		ctx,
		locationID,
		date.StartOfDay().Time(),
		date.EndOfDay().Time(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PickupListDTO, 0, len(pickups))
	for i := range pickups {
		p := &pickups[i]
		out = append(out, dto.PickupListDTO{
			ID:            p.ID,
			HouseholdName: p.Household.Name,
			Earliest:      p.Earliest,
			Latest:        p.Latest,
			IsPickedUp:    p.IsPickedUp,
			NoShowAt:      p.NoShowAt,
			OutsideHours:  domain.IsOutsideHours(p, schedules),
		})
	}

	return out, nil
}
