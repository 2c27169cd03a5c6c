package pickup

import (
	"time"

	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ===============================
// Reconciliation (desired vs stored)
// ===============================

// DesiredPickup is one window of the desired state a household submits.
type DesiredPickup struct {
	LocationID uint
	Earliest   time.Time
	Latest     time.Time
}

// Plan is the diff between desired and stored pickups. Applying it
// (delete then conflict-tolerant insert, one transaction) converges the
// stored state; re-planning the converged state yields an empty Plan.
type Plan struct {
	Inserts   []DesiredPickup
	DeleteIDs []uint
}

func (p Plan) Empty() bool {
	return len(p.Inserts) == 0 && len(p.DeleteIDs) == 0
}

// identityKey is the logical pickup identity. Location is part of the
// key: an unchanged window at a new location is a delete at the old
// location plus an insert at the new one, never a "no change".
type identityKey struct {
	locationID uint
	earliest   int64
	latest     int64
}

func keyOf(locationID uint, earliest, latest time.Time) identityKey {
	return identityKey{
		locationID: locationID,
		earliest:   earliest.UnixMilli(),
		latest:     latest.UnixMilli(),
	}
}

// BuildPlan diffs the desired windows against the household's stored
// pickups.
//
// Desired windows whose earliest instant is not strictly after now are
// silently dropped from the insert set; the filter compares full
// instants, never a midnight-truncated date, so a window later today
// survives and a window earlier today does not.
func BuildPlan(desired []DesiredPickup, existing []models.Pickup, now time.Time) Plan {
	existingByKey := make(map[identityKey]uint, len(existing))
	for i := range existing {
		e := &existing[i]
		existingByKey[keyOf(e.LocationID, e.Earliest, e.Latest)] = e.ID
	}

	var plan Plan
	desiredKeys := make(map[identityKey]bool, len(desired))

	for _, d := range desired {
		if !d.Earliest.After(now) {
			continue
		}

		k := keyOf(d.LocationID, d.Earliest, d.Latest)
		desiredKeys[k] = true

		if _, ok := existingByKey[k]; !ok {
			plan.Inserts = append(plan.Inserts, d)
		}
	}

	for i := range existing {
		e := &existing[i]
		if !desiredKeys[keyOf(e.LocationID, e.Earliest, e.Latest)] {
			plan.DeleteIDs = append(plan.DeleteIDs, e.ID)
		}
	}

	return plan
}
