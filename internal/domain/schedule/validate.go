package schedule

import (
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ValidateSchedule checks a schedule before it is written: date range
// ordering, at most one entry per weekday, and well-formed hours on every
// open day. Errors carry the offending field.
func ValidateSchedule(s *models.Schedule) error {
	if s.Name == "" {
		return httperr.ErrField("name", "missing_field", "Schedule name is required.")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return httperr.ErrField("start_date", "missing_field", "Start and end date are required.")
	}
	if clock.At(s.EndDate).StartOfDay().IsBefore(clock.At(s.StartDate).StartOfDay()) {
		return httperr.ErrField("end_date", "invalid_range", "End date is before start date.")
	}

	seen := map[string]bool{}
	for i := range s.Days {
		d := &s.Days[i]

		if !clock.IsWeekday(d.Weekday) {
			return httperr.ErrField("days.weekday", "invalid_weekday", "Unknown weekday "+d.Weekday+".")
		}
		if seen[d.Weekday] {
			return httperr.ErrField("days.weekday", "duplicate_weekday", "More than one entry for "+d.Weekday+".")
		}
		seen[d.Weekday] = true

		if !d.IsOpen {
			continue
		}

		open, err := MinutesOfDay(d.OpeningTime)
		if err != nil {
			return httperr.ErrField("days.opening_time", "invalid_time", "Opening time must be HH:mm.")
		}
		close, err := MinutesOfDay(d.ClosingTime)
		if err != nil {
			return httperr.ErrField("days.closing_time", "invalid_time", "Closing time must be HH:mm.")
		}
		if open >= close {
			return httperr.ErrField("days.closing_time", "invalid_range", "Closing time must be after opening time.")
		}
	}

	return nil
}
