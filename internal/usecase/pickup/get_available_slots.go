package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	schedDomain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// SlotCache caches the computed slot list per location and date.
type SlotCache interface {
	GetSlots(ctx context.Context, locationID uint, date string) ([]string, bool)
	SetSlots(ctx context.Context, locationID uint, date string, slots []string)
}

// GetAvailableSlots enumerates the bookable "HH:mm" slot starts for a
// date: the resolver decides the open range, the slot grid fills it, and
// past starts (for today) and full slots are dropped.
type GetAvailableSlots struct {
	repo  domain.Repository
	clk   clock.Clock
	cache SlotCache
}

func NewGetAvailableSlots(repo domain.Repository, clk clock.Clock, cache SlotCache) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, clk: clk, cache: cache}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	locationID uint,
	dateStr string,
) ([]string, error) {

	date, err := clock.ParseLocalDate(dateStr)
	if err != nil {
		return nil, httperr.ErrField("date", "invalid_date", "Date must be YYYY-MM-DD.")
	}

	location, err := uc.repo.GetLocation(ctx, locationID)
	if err != nil {
		return nil, httperr.ErrBusiness("location_not_found")
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.GetSlots(ctx, locationID, dateStr); ok {
			return uc.dropPast(date, slots), nil
		}
	}

	schedules, err := uc.repo.ListSchedules(ctx, locationID)
	if err != nil {
		return nil, err
	}

	window, ok := schedDomain.AvailableTimeRange(date, schedules)
	if !ok {
		return []string{}, nil
	}

	// One read for the whole day; per-slot occupancy is counted in memory.
	booked, err := uc.repo.ListPickupsForPeriod(
		ctx,
		locationID,
		date.StartOfDay().Time(),
		date.EndOfDay().Time(),
	)
	if err != nil {
		return nil, err
	}

	duration := location.SlotDurationMinutes
	if duration <= 0 {
		duration = schedDomain.DefaultSlotMinutes
	}

	slots := []string{}
	for hhmm := range schedDomain.SlotStarts(window, duration) {
		if cap := location.MaxParcelsPerSlot; cap != nil {
			if slotOccupancy(hhmm, booked) >= int64(*cap) {
				continue
			}
		}
		slots = append(slots, hhmm)
	}

	if uc.cache != nil {
		uc.cache.SetSlots(ctx, locationID, dateStr, slots)
	}

	return uc.dropPast(date, slots), nil
}

// dropPast removes starts that are no longer in the future when the
// requested date is today. Applied after the cache so cached entries stay
// valid all day.
func (uc *GetAvailableSlots) dropPast(date clock.Zoned, slots []string) []string {
	now := clock.At(uc.clk.Now())
	if date.DateString() != now.DateString() {
		if date.StartOfDay().IsBefore(now.StartOfDay()) {
			return []string{}
		}
		return slots
	}

	nowHHMM, _ := schedDomain.MinutesOfDay(now.TimeString())
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		m, err := schedDomain.MinutesOfDay(s)
		if err == nil && m > nowHHMM {
			out = append(out, s)
		}
	}
	return out
}

func slotOccupancy(hhmm string, booked []models.Pickup) int64 {
	var n int64
	for i := range booked {
		if clock.At(booked[i].Earliest).TimeString() == hhmm {
			n++
		}
	}
	return n
}
