package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ---- fixtures --------------------------------------------------------------

func localDate(t *testing.T, date string) clock.Zoned {
	t.Helper()
	z, err := clock.ParseLocalDate(date)
	require.NoError(t, err)
	return z
}

func weeklySchedule(t *testing.T, id uint, start, end string, days ...models.ScheduleDay) models.Schedule {
	t.Helper()
	return models.Schedule{
		ID:        id,
		Name:      "test hours",
		StartDate: localDate(t, start).Time(),
		EndDate:   localDate(t, end).Time(),
		Days:      days,
	}
}

func openDay(weekday, opening, closing string) models.ScheduleDay {
	return models.ScheduleDay{Weekday: weekday, IsOpen: true, OpeningTime: opening, ClosingTime: closing}
}

func closedDay(weekday string) models.ScheduleDay {
	return models.ScheduleDay{Weekday: weekday, IsOpen: false}
}

// ---- IsDateAvailable -------------------------------------------------------

func TestIsDateAvailable_OpenWeekday(t *testing.T) {
	s := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))

	// 2026-05-04 is a Monday.
	got := schedule.IsDateAvailable(localDate(t, "2026-05-04"), []models.Schedule{s})
	assert.True(t, got.Available)
	assert.Equal(t, schedule.ReasonNone, got.Reason)
}

func TestIsDateAvailable_ReasonsDistinguished(t *testing.T) {
	s := weeklySchedule(t, 1, "2026-05-01", "2026-05-31",
		openDay("monday", "10:00", "18:00"),
		closedDay("tuesday"),
	)
	schedules := []models.Schedule{s}

	// outside the date range entirely
	got := schedule.IsDateAvailable(localDate(t, "2026-06-01"), schedules)
	assert.False(t, got.Available)
	assert.Equal(t, schedule.ReasonNoSchedule, got.Reason)

	// covered but closed that weekday (2026-05-05 is a Tuesday)
	got = schedule.IsDateAvailable(localDate(t, "2026-05-05"), schedules)
	assert.False(t, got.Available)
	assert.Equal(t, schedule.ReasonClosedDay, got.Reason)

	// covered with no entry for the weekday at all (2026-05-06, Wednesday)
	got = schedule.IsDateAvailable(localDate(t, "2026-05-06"), schedules)
	assert.False(t, got.Available)
	assert.Equal(t, schedule.ReasonClosedDay, got.Reason)
}

func TestIsDateAvailable_InclusiveRangeEdges(t *testing.T) {
	// single-day schedule: start = end = a Friday
	s := weeklySchedule(t, 1, "2026-05-08", "2026-05-08", openDay("friday", "09:00", "17:00"))

	got := schedule.IsDateAvailable(localDate(t, "2026-05-08"), []models.Schedule{s})
	assert.True(t, got.Available, "the end date itself is inside the range")
}

// Overlapping schedules are a union: any open match makes the date open.
func TestIsDateAvailable_UnionAcrossOverlappingSchedules(t *testing.T) {
	a := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", closedDay("sunday"))
	b := weeklySchedule(t, 2, "2026-05-15", "2026-06-15", openDay("sunday", "10:00", "18:00"))

	// 2026-05-17 is a Sunday inside both ranges.
	got := schedule.IsDateAvailable(localDate(t, "2026-05-17"), []models.Schedule{a, b})
	assert.True(t, got.Available)
}

// ---- IsTimeAvailable -------------------------------------------------------

func TestIsTimeAvailable_Bounds(t *testing.T) {
	s := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))
	schedules := []models.Schedule{s}
	monday := localDate(t, "2026-05-04")

	assert.True(t, schedule.IsTimeAvailable(monday, "10:00", schedules).Available)
	assert.True(t, schedule.IsTimeAvailable(monday, "13:30", schedules).Available)

	// closing time is inclusive: a slot may start exactly at close
	assert.True(t, schedule.IsTimeAvailable(monday, "18:00", schedules).Available)

	got := schedule.IsTimeAvailable(monday, "18:01", schedules)
	assert.False(t, got.Available)
	assert.Equal(t, schedule.ReasonOutsideHours, got.Reason)

	got = schedule.IsTimeAvailable(monday, "09:59", schedules)
	assert.False(t, got.Available)
	assert.Equal(t, schedule.ReasonOutsideHours, got.Reason)
}

func TestIsTimeAvailable_MalformedTime(t *testing.T) {
	s := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))

	got := schedule.IsTimeAvailable(localDate(t, "2026-05-04"), "25:99", []models.Schedule{s})
	assert.False(t, got.Available)
}

// First covering open match decides the hours; ranges are not merged.
func TestIsTimeAvailable_FirstOpenMatchWins(t *testing.T) {
	a := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "12:00"))
	b := weeklySchedule(t, 2, "2026-05-01", "2026-05-31", openDay("monday", "14:00", "18:00"))
	monday := localDate(t, "2026-05-04")

	got := schedule.IsTimeAvailable(monday, "15:00", []models.Schedule{a, b})
	assert.False(t, got.Available, "second schedule's hours are not unioned in")

	got = schedule.IsTimeAvailable(monday, "11:00", []models.Schedule{a, b})
	assert.True(t, got.Available)
}

// ---- AvailableTimeRange ----------------------------------------------------

func TestAvailableTimeRange(t *testing.T) {
	s := weeklySchedule(t, 1, "2026-05-01", "2026-05-31", openDay("monday", "10:00", "18:00"))

	r, ok := schedule.AvailableTimeRange(localDate(t, "2026-05-04"), []models.Schedule{s})
	require.True(t, ok)
	assert.Equal(t, "10:00", r.EarliestTime)
	assert.Equal(t, "18:00", r.LatestTime)

	_, ok = schedule.AvailableTimeRange(localDate(t, "2026-05-05"), []models.Schedule{s})
	assert.False(t, ok)
}

// ---- MinutesOfDay ----------------------------------------------------------

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"09:60", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tc := range cases {
		got, err := schedule.MinutesOfDay(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}
