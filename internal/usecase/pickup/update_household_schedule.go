package pickup

import (
	"context"
	"fmt"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	schedDomain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type PickupWindowInput struct {
	Earliest string // RFC3339
	Latest   string // RFC3339
}

type UpdateHouseholdScheduleInput struct {
	HouseholdID uint
	LocationID  uint
	Windows     []PickupWindowInput
}

type UpdateHouseholdScheduleResult struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
	Skipped  int `json:"skipped"` // past-dated desired windows, silently dropped
}

// AvailabilityCache is invalidated after writes that change what is
// bookable. A nil cache is fine; correctness never depends on it.
type AvailabilityCache interface {
	InvalidateLocation(ctx context.Context, locationID uint)
}

// ======================================================
// USE CASE
// ======================================================

// UpdateHouseholdSchedule reconciles a household's desired pickup windows
// at one location against what is stored: availability is validated for
// every future window up front (all-or-nothing), the diff is applied as
// delete-then-insert inside one transaction with capacity checks under
// row locks, and the outside-hours counter is recomputed after commit.
type UpdateHouseholdSchedule struct {
	repo      domain.Repository
	clk       clock.Clock
	cache     AvailabilityCache
	recompute *RecomputeOutsideHours
	audit     *audit.Dispatcher
}

func NewUpdateHouseholdSchedule(
	repo domain.Repository,
	clk clock.Clock,
	cache AvailabilityCache,
	recompute *RecomputeOutsideHours,
	auditD *audit.Dispatcher,
) *UpdateHouseholdSchedule {
	return &UpdateHouseholdSchedule{
		repo:      repo,
		clk:       clk,
		cache:     cache,
		recompute: recompute,
		audit:     auditD,
	}
}

func (uc *UpdateHouseholdSchedule) Execute(
	ctx context.Context,
	in UpdateHouseholdScheduleInput,
) (*UpdateHouseholdScheduleResult, error) {

	household, err := uc.repo.GetHousehold(ctx, in.HouseholdID)
	if err != nil {
		return nil, httperr.ErrBusiness("household_not_found")
	}
	if household.Locked {
		return nil, httperr.ErrBusiness("household_locked")
	}

	location, err := uc.repo.GetLocation(ctx, in.LocationID)
	if err != nil {
		return nil, httperr.ErrBusiness("location_not_found")
	}

	// --------------------------------------------------
	// Parse and validate the desired windows
	// --------------------------------------------------
	desired := make([]domain.DesiredPickup, 0, len(in.Windows))
	for i, w := range in.Windows {
		earliest, err := clock.Parse(w.Earliest)
		if err != nil {
			return nil, httperr.ErrField(
				fmt.Sprintf("windows[%d].earliest", i),
				"invalid_instant", "Earliest must be an RFC3339 instant.",
			)
		}
		latest, err := clock.Parse(w.Latest)
		if err != nil {
			return nil, httperr.ErrField(
				fmt.Sprintf("windows[%d].latest", i),
				"invalid_instant", "Latest must be an RFC3339 instant.",
			)
		}
		if !earliest.IsBefore(latest) {
			return nil, httperr.ErrField(
				fmt.Sprintf("windows[%d]", i),
				"invalid_window", "Earliest must be before latest.",
			)
		}

		desired = append(desired, domain.DesiredPickup{
			LocationID: in.LocationID,
			Earliest:   earliest.Time(),
			Latest:     latest.Time(),
		})
	}

	now := uc.clk.Now()

	// --------------------------------------------------
	// Availability: all-or-nothing, before any write.
	// Past windows are exempt; BuildPlan drops them anyway.
	// --------------------------------------------------
	schedules, err := uc.repo.ListSchedules(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}

	for _, d := range desired {
		if !d.Earliest.After(now) {
			continue
		}
		if !schedDomain.IsWindowAvailable(clock.At(d.Earliest), clock.At(d.Latest), schedules) {
			avail := windowFailure(clock.At(d.Earliest), clock.At(d.Latest), schedules)
			return nil, httperr.ErrBusinessMsg(string(avail.Reason), avail.Message)
		}
	}

	// --------------------------------------------------
	// Diff desired vs stored
	// --------------------------------------------------
	existing, err := uc.repo.ListHouseholdPickups(ctx, in.HouseholdID)
	if err != nil {
		return nil, err
	}

	// Only future, not picked up rows participate in the diff. Past and
	// picked-up pickups are history; a new desired set never supersedes
	// them, so they must never land in the delete set.
	active := make([]models.Pickup, 0, len(existing))
	for _, e := range existing {
		if e.Earliest.After(now) && !e.IsPickedUp {
			active = append(active, e)
		}
	}

	plan := domain.BuildPlan(desired, active, now)

	futureDesired := 0
	for _, d := range desired {
		if d.Earliest.After(now) {
			futureDesired++
		}
	}

	result := &UpdateHouseholdScheduleResult{
		Inserted: len(plan.Inserts),
		Deleted:  len(plan.DeleteIDs),
		Skipped:  len(desired) - futureDesired,
	}

	if plan.Empty() {
		return result, nil
	}

	// --------------------------------------------------
	// Apply in one transaction: deletes first, then capacity
	// checks under row locks, then the conflict-tolerant insert.
	// --------------------------------------------------
	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.DeletePickups(ctx, plan.DeleteIDs); err != nil {
			return err
		}

		if err := checkCapacity(ctx, tx, location, plan.Inserts); err != nil {
			return err
		}

		rows := make([]models.Pickup, 0, len(plan.Inserts))
		for _, d := range plan.Inserts {
			rows = append(rows, models.Pickup{
				HouseholdID: in.HouseholdID,
				LocationID:  d.LocationID,
				Earliest:    d.Earliest,
				Latest:      d.Latest,
			})
		}
		return tx.InsertPickups(ctx, rows)
	})
	if err != nil {
		return nil, err
	}

	// Denormalized counter and cache are refreshed post-commit; both are
	// eventually consistent collaborators, not part of the transaction.
	if _, err := uc.recompute.Execute(ctx, in.LocationID); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateLocation(ctx, in.LocationID)
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: in.LocationID,
		Action:     "household_pickups_reconciled",
		Entity:     "household",
		EntityID:   &household.ID,
		Metadata:   result,
	})

	return result, nil
}

// checkCapacity enforces the per-day and per-slot caps for every pending
// insert, counting stored rows (under lock) plus inserts from this plan
// that land on the same day or slot.
func checkCapacity(
	ctx context.Context,
	tx domain.Repository,
	location *models.Location,
	inserts []domain.DesiredPickup,
) error {

	if location.MaxParcelsPerDay == nil && location.MaxParcelsPerSlot == nil {
		return nil
	}

	pendingPerDay := map[string]int64{}
	pendingPerSlot := map[string]int64{}

	for _, d := range inserts {
		day := clock.At(d.Earliest).DateString()
		slot := d.Earliest.UTC().Format("2006-01-02T15:04") + "/" + d.Latest.UTC().Format("2006-01-02T15:04")

		if cap := location.MaxParcelsPerDay; cap != nil {
			stored, err := tx.CountPickupsForDay(
				ctx,
				location.ID,
				clock.At(d.Earliest).StartOfDay().Time(),
				clock.At(d.Earliest).EndOfDay().Time(),
			)
			if err != nil {
				return err
			}
			if stored+pendingPerDay[day] >= int64(*cap) {
				return httperr.ErrBusinessMsg(
					"day_capacity_reached",
					fmt.Sprintf("Location is fully booked on %s.", day),
				)
			}
		}

		if cap := location.MaxParcelsPerSlot; cap != nil {
			stored, err := tx.CountPickupsForSlot(ctx, location.ID, d.Earliest, d.Latest)
			if err != nil {
				return err
			}
			if stored+pendingPerSlot[slot] >= int64(*cap) {
				return httperr.ErrBusinessMsg(
					"slot_capacity_reached",
					fmt.Sprintf("Slot %s is fully booked.", clock.At(d.Earliest).TimeString()),
				)
			}
		}

		pendingPerDay[day]++
		pendingPerSlot[slot]++
	}

	return nil
}

// windowFailure reports the availability failure of whichever window
// boundary is actually unavailable. Checking only earliest would report
// success, with an empty reason, when latest alone falls outside hours.
func windowFailure(earliest, latest clock.Zoned, schedules []models.Schedule) schedDomain.TimeAvailability {
	avail := schedDomain.IsTimeAvailable(earliest, earliest.TimeString(), schedules)
	if avail.Available {
		avail = schedDomain.IsTimeAvailable(latest, latest.TimeString(), schedules)
	}
	return avail
}
