package schedule

import (
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ===============================
// Schedule change impact
// ===============================

// ChangeSets builds the before/after schedule lists for a create or edit.
// Current is the state as it exists right now, original included when
// editing. Future swaps the proposed schedule in for the one identified by
// excludeID (zero for a brand-new schedule).
func ChangeSets(existing []models.Schedule, proposed models.Schedule, excludeID uint) (current, future []models.Schedule) {
	current = existing

	future = make([]models.Schedule, 0, len(existing)+1)
	for _, s := range existing {
		if excludeID != 0 && s.ID == excludeID {
			continue
		}
		future = append(future, s)
	}
	future = append(future, proposed)

	return current, future
}

// CountAffectedByChange counts pickups that regress: available under the
// current schedule set (both window boundaries) and unavailable under the
// future one. Pickups already outside hours, and pickups a change brings
// inside hours, are not counted. The explicit current-vs-future comparison
// is what separates "was always broken" from "this change breaks it"; a
// single check against the future set cannot tell them apart.
func CountAffectedByChange(current, future []models.Schedule, pickups []models.Pickup) int {
	affected := 0
	for i := range pickups {
		earliest := clock.At(pickups[i].Earliest)
		latest := clock.At(pickups[i].Latest)

		if !IsWindowAvailable(earliest, latest, current) {
			continue
		}
		if !IsWindowAvailable(earliest, latest, future) {
			affected++
		}
	}
	return affected
}

// CountAffectedByDeletion counts pickups that only the schedule being
// deleted keeps inside hours. Candidates are pickups whose earliest
// instant falls inside the deleted schedule's date range, expanded to
// start-of-day/end-of-day instants; comparing the raw date value instead
// misses every same-day pickup after midnight.
func CountAffectedByDeletion(toDelete models.Schedule, remaining []models.Schedule, pickups []models.Pickup) int {
	rangeStart := clock.At(toDelete.StartDate).StartOfDay()
	rangeEnd := clock.At(toDelete.EndDate).EndOfDay()

	affected := 0
	for i := range pickups {
		earliest := clock.At(pickups[i].Earliest)
		if !earliest.IsBetween(rangeStart, rangeEnd) {
			continue
		}

		latest := clock.At(pickups[i].Latest)
		if !IsWindowAvailable(earliest, latest, remaining) {
			affected++
		}
	}
	return affected
}
