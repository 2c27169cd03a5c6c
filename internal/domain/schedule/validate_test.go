package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

func TestValidateSchedule(t *testing.T) {
	valid := weeklySchedule(t, 0, "2026-05-01", "2026-05-31",
		openDay("monday", "10:00", "18:00"),
		closedDay("sunday"),
	)
	assert.NoError(t, schedule.ValidateSchedule(&valid))

	cases := []struct {
		name   string
		mutate func(*models.Schedule)
		code   string
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(s *models.Schedule) { s.Name = "" },
			code:   "missing_field", field: "name",
		},
		{
			name:   "end before start",
			mutate: func(s *models.Schedule) { s.StartDate, s.EndDate = s.EndDate, s.StartDate },
			code:   "invalid_range", field: "end_date",
		},
		{
			name:   "unknown weekday",
			mutate: func(s *models.Schedule) { s.Days[0].Weekday = "moonday" },
			code:   "invalid_weekday", field: "days.weekday",
		},
		{
			name: "duplicate weekday",
			mutate: func(s *models.Schedule) {
				s.Days = append(s.Days, openDay("monday", "08:00", "12:00"))
			},
			code: "duplicate_weekday", field: "days.weekday",
		},
		{
			name:   "malformed opening time",
			mutate: func(s *models.Schedule) { s.Days[0].OpeningTime = "9:00" },
			code:   "invalid_time", field: "days.opening_time",
		},
		{
			name:   "closing not after opening",
			mutate: func(s *models.Schedule) { s.Days[0].ClosingTime = "10:00" },
			code:   "invalid_range", field: "days.closing_time",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := weeklySchedule(t, 0, "2026-05-01", "2026-05-31",
				openDay("monday", "10:00", "18:00"),
				closedDay("sunday"),
			)
			tc.mutate(&s)

			err := schedule.ValidateSchedule(&s)
			require.Error(t, err)
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, be.Code)
			assert.Equal(t, tc.field, be.Field)
		})
	}
}

// Closed days carry no hours and are not hour-validated.
func TestValidateSchedule_ClosedDayHoursIgnored(t *testing.T) {
	s := weeklySchedule(t, 0, "2026-05-01", "2026-05-31",
		models.ScheduleDay{Weekday: "sunday", IsOpen: false, OpeningTime: "garbage"},
	)
	assert.NoError(t, schedule.ValidateSchedule(&s))
}

// A single-day schedule is a valid range.
func TestValidateSchedule_SingleDayRange(t *testing.T) {
	s := weeklySchedule(t, 0, "2026-05-08", "2026-05-08", openDay("friday", "09:00", "17:00"))
	assert.NoError(t, schedule.ValidateSchedule(&s))
}
