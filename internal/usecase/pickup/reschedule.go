package pickup

import (
	"context"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	schedDomain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type ReschedulePickupInput struct {
	LocationID uint
	PickupID   uint

	Date string // "2006-01-02", local
	Time string // "15:04", local slot start
}

// ======================================================
// USE CASE
// ======================================================

// ReschedulePickup moves one pickup to a new slot at its location. The
// availability check and the write run inside one transaction with the
// capacity counts row-locked, so two concurrent moves into the last free
// slot cannot both commit.
type ReschedulePickup struct {
	repo      domain.Repository
	clk       clock.Clock
	cache     AvailabilityCache
	recompute *RecomputeOutsideHours
	audit     *audit.Dispatcher
}

func NewReschedulePickup(
	repo domain.Repository,
	clk clock.Clock,
	cache AvailabilityCache,
	recompute *RecomputeOutsideHours,
	auditD *audit.Dispatcher,
) *ReschedulePickup {
	return &ReschedulePickup{
		repo:      repo,
		clk:       clk,
		cache:     cache,
		recompute: recompute,
		audit:     auditD,
	}
}

func (uc *ReschedulePickup) Execute(
	ctx context.Context,
	in ReschedulePickupInput,
) error {

	location, err := uc.repo.GetLocation(ctx, in.LocationID)
	if err != nil {
		return httperr.ErrBusiness("location_not_found")
	}

	p, err := uc.repo.GetPickup(ctx, in.LocationID, in.PickupID)
	if err != nil {
		return httperr.ErrBusiness("pickup_not_found")
	}
	if err := domain.CanReschedule(p); err != nil {
		return err
	}

	day, err := clock.ParseLocalDate(in.Date)
	if err != nil {
		return httperr.ErrField("date", "invalid_date", "Date must be YYYY-MM-DD.")
	}
	startMin, err := schedDomain.MinutesOfDay(in.Time)
	if err != nil {
		return httperr.ErrField("time", "invalid_time", "Time must be HH:mm.")
	}

	duration := location.SlotDurationMinutes
	if duration <= 0 {
		duration = schedDomain.DefaultSlotMinutes
	}

	earliest := day.StartOfDay().AddMinutes(startMin)
	latest := earliest.AddMinutes(duration)

	if !earliest.IsAfter(clock.At(uc.clk.Now())) {
		return httperr.ErrField("time", "in_the_past", "New slot must be in the future.")
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		schedules, err := tx.ListSchedules(ctx, in.LocationID)
		if err != nil {
			return err
		}
		if !schedDomain.IsWindowAvailable(earliest, latest, schedules) {
			avail := windowFailure(earliest, latest, schedules)
			return httperr.ErrBusinessMsg(string(avail.Reason), avail.Message)
		}

		if cap := location.MaxParcelsPerSlot; cap != nil {
			stored, err := tx.CountPickupsForSlot(ctx, in.LocationID, earliest.Time(), latest.Time())
			if err != nil {
				return err
			}
			if stored >= int64(*cap) {
				return httperr.ErrBusinessMsg("slot_capacity_reached", "Slot is fully booked.")
			}
		}

		p.Earliest = earliest.Time()
		p.Latest = latest.Time()
		return tx.UpdatePickup(ctx, p)
	})
	if err != nil {
		return err
	}

	if _, err := uc.recompute.Execute(ctx, in.LocationID); err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.InvalidateLocation(ctx, in.LocationID)
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: in.LocationID,
		Action:     "pickup_rescheduled",
		Entity:     "pickup",
		EntityID:   &p.ID,
	})

	return nil
}
