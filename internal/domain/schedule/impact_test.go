package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

func pickupAt(t *testing.T, earliest, latest string) models.Pickup {
	t.Helper()
	e, err := clock.Parse(earliest)
	require.NoError(t, err)
	l, err := clock.Parse(latest)
	require.NoError(t, err)
	return models.Pickup{Earliest: e.Time(), Latest: l.Time()}
}

// A brand-new schedule that brings an outside-hours pickup inside hours
// is an improvement, never a warning.
func TestCountAffectedByChange_ImprovementsDoNotWarn(t *testing.T) {
	// Monday 13:00-13:30 pickup (2026-05-04); no schedule covers it today.
	p := pickupAt(t, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")

	proposed := weeklySchedule(t, 0, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))

	current, future := schedule.ChangeSets(nil, proposed, 0)
	got := schedule.CountAffectedByChange(current, future, []models.Pickup{p})
	assert.Equal(t, 0, got)
}

// Shrinking hours so an existing pickup no longer fits is a regression.
func TestCountAffectedByChange_ShrinkingHoursWarns(t *testing.T) {
	existing := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))
	p := pickupAt(t, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")

	edited := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "12:00"))

	current, future := schedule.ChangeSets([]models.Schedule{existing}, edited, 7)
	got := schedule.CountAffectedByChange(current, future, []models.Pickup{p})
	assert.Equal(t, 1, got)
}

// A pickup that was already outside hours stays uncounted even when the
// edit leaves it outside.
func TestCountAffectedByChange_AlreadyOutsideNotCounted(t *testing.T) {
	existing := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "12:00"))
	p := pickupAt(t, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")

	edited := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "11:00"))

	current, future := schedule.ChangeSets([]models.Schedule{existing}, edited, 7)
	got := schedule.CountAffectedByChange(current, future, []models.Pickup{p})
	assert.Equal(t, 0, got)
}

// Both boundaries of the window count: a latest instant past the new
// close is a regression even when earliest still fits.
func TestCountAffectedByChange_LatestBoundaryChecked(t *testing.T) {
	existing := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))
	p := pickupAt(t, "2026-05-04T11:30:00+02:00", "2026-05-04T12:30:00+02:00")

	edited := weeklySchedule(t, 7, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "12:00"))

	current, future := schedule.ChangeSets([]models.Schedule{existing}, edited, 7)
	got := schedule.CountAffectedByChange(current, future, []models.Pickup{p})
	assert.Equal(t, 1, got)
}

func TestCountAffectedByDeletion_OnlyUncoveredCount(t *testing.T) {
	toDelete := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))
	overlap := weeklySchedule(t, 2, "2026-05-01", "2026-05-15", openDay("monday", "10:00", "18:00"))

	covered := pickupAt(t, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")   // also in overlap
	uncovered := pickupAt(t, "2026-05-18T13:00:00+02:00", "2026-05-18T13:30:00+02:00") // only in toDelete

	got := schedule.CountAffectedByDeletion(toDelete, []models.Schedule{overlap}, []models.Pickup{covered, uncovered})
	assert.Equal(t, 1, got)
}

// Same-day regression guard: a pickup in the afternoon of the schedule's
// single covered date must be considered a candidate. Truncating the
// range comparison to raw midnights would skip it.
func TestCountAffectedByDeletion_SameDayPickupNotMissed(t *testing.T) {
	// single-day schedule on a Friday
	toDelete := weeklySchedule(t, 1, "2026-05-08", "2026-05-08", openDay("friday", "09:00", "17:00"))
	p := pickupAt(t, "2026-05-08T13:00:00+02:00", "2026-05-08T13:30:00+02:00")

	got := schedule.CountAffectedByDeletion(toDelete, nil, []models.Pickup{p})
	assert.Equal(t, 1, got)
}

func TestCountAffectedByDeletion_OutsideRangeIgnored(t *testing.T) {
	toDelete := weeklySchedule(t, 1, "2026-05-01", "2026-05-15", openDay("monday", "10:00", "18:00"))
	p := pickupAt(t, "2026-05-18T13:00:00+02:00", "2026-05-18T13:30:00+02:00")

	got := schedule.CountAffectedByDeletion(toDelete, nil, []models.Pickup{p})
	assert.Equal(t, 0, got, "pickup outside the deleted schedule's range is not its concern")
}

func TestChangeSets(t *testing.T) {
	a := weeklySchedule(t, 1, "2026-05-01", "2026-05-31")
	b := weeklySchedule(t, 2, "2026-06-01", "2026-06-30")
	proposed := weeklySchedule(t, 2, "2026-06-01", "2026-07-31")

	current, future := schedule.ChangeSets([]models.Schedule{a, b}, proposed, 2)

	// current keeps the original being edited
	assert.Len(t, current, 2)

	// future swaps it for the proposal
	require.Len(t, future, 2)
	assert.Equal(t, uint(1), future[0].ID)
	assert.True(t, future[1].EndDate.Equal(mustEnd(t, "2026-07-31")))
}

func mustEnd(t *testing.T, date string) time.Time {
	t.Helper()
	z, err := clock.ParseLocalDate(date)
	require.NoError(t, err)
	return z.Time()
}
