package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ===============================
// Unavailability reasons
// ===============================

// Reason distinguishes the three user-facing remedies: pick another week,
// pick another weekday, pick another time.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNoSchedule   Reason = "no_schedule_for_date"
	ReasonClosedDay    Reason = "closed_on_weekday"
	ReasonOutsideHours Reason = "outside_opening_hours"
)

type DateAvailability struct {
	Available bool   `json:"available"`
	Reason    Reason `json:"reason,omitempty"`
}

type TimeAvailability struct {
	Available bool   `json:"available"`
	Reason    Reason `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

// TimeRange is an open interval of local wall-clock strings for one day.
type TimeRange struct {
	EarliestTime string `json:"earliest_time"`
	LatestTime   string `json:"latest_time"`
}

// ===============================
// Resolution
// ===============================

// matchDay finds the first covering schedule whose weekday entry is open
// for the candidate date. Schedules are additive: any open match makes the
// date available. covered reports whether any schedule's date range
// contained the date at all, open match or not.
func matchDay(date clock.Zoned, schedules []models.Schedule) (day *models.ScheduleDay, covered bool) {
	dayStart := date.StartOfDay()
	weekday := date.Weekday()

	for i := range schedules {
		s := &schedules[i]

		// Expand the inclusive date range to full-day instants. Comparing
		// against raw midnights would make every time except 00:00 on the
		// end date fall outside the range.
		rangeStart := clock.At(s.StartDate).StartOfDay()
		rangeEnd := clock.At(s.EndDate).EndOfDay()
		if !dayStart.IsBetween(rangeStart, rangeEnd) {
			continue
		}
		covered = true

		for j := range s.Days {
			d := &s.Days[j]
			if d.Weekday == string(weekday) && d.IsOpen {
				return d, true
			}
		}
	}

	return nil, covered
}

func IsDateAvailable(date clock.Zoned, schedules []models.Schedule) DateAvailability {
	day, covered := matchDay(date, schedules)
	if day != nil {
		return DateAvailability{Available: true}
	}
	if !covered {
		return DateAvailability{Available: false, Reason: ReasonNoSchedule}
	}
	return DateAvailability{Available: false, Reason: ReasonClosedDay}
}

// IsTimeAvailable additionally requires openingTime <= hhmm <= closingTime.
// Closing time is inclusive: a slot may start exactly at closing, since
// what matters upstream is the slot ending at or before close.
//
// When several covering schedules open the same weekday with different
// hours, the first open match wins; overlapping hour ranges on one day are
// not merged. Known limitation.
func IsTimeAvailable(date clock.Zoned, hhmm string, schedules []models.Schedule) TimeAvailability {
	day, covered := matchDay(date, schedules)
	if day == nil {
		if !covered {
			return TimeAvailability{
				Available: false,
				Reason:    ReasonNoSchedule,
				Message:   "no schedule covers " + date.DateString(),
			}
		}
		return TimeAvailability{
			Available: false,
			Reason:    ReasonClosedDay,
			Message:   "closed on " + string(date.Weekday()),
		}
	}

	t, err := MinutesOfDay(hhmm)
	if err != nil {
		return TimeAvailability{
			Available: false,
			Reason:    ReasonOutsideHours,
			Message:   err.Error(),
		}
	}

	open, errO := MinutesOfDay(day.OpeningTime)
	close, errC := MinutesOfDay(day.ClosingTime)
	if errO != nil || errC != nil {
		return TimeAvailability{
			Available: false,
			Reason:    ReasonOutsideHours,
			Message:   "schedule has malformed opening hours",
		}
	}

	if t < open || t > close {
		return TimeAvailability{
			Available: false,
			Reason:    ReasonOutsideHours,
			Message:   fmt.Sprintf("%s is outside %s-%s", hhmm, day.OpeningTime, day.ClosingTime),
		}
	}

	return TimeAvailability{Available: true}
}

// AvailableTimeRange returns the opening hours of the schedule/day match
// that made the date available, or ok=false when the date is closed.
func AvailableTimeRange(date clock.Zoned, schedules []models.Schedule) (TimeRange, bool) {
	day, _ := matchDay(date, schedules)
	if day == nil {
		return TimeRange{}, false
	}
	return TimeRange{EarliestTime: day.OpeningTime, LatestTime: day.ClosingTime}, true
}

// IsWindowAvailable checks both boundaries of a pickup window against the
// schedule set: same local date rules apply to each instant's own date.
func IsWindowAvailable(earliest, latest clock.Zoned, schedules []models.Schedule) bool {
	return IsTimeAvailable(earliest, earliest.TimeString(), schedules).Available &&
		IsTimeAvailable(latest, latest.TimeString(), schedules).Available
}

// ===============================
// Clock strings
// ===============================

// MinutesOfDay parses "HH:mm" into minutes since local midnight. Both
// sides of every hours comparison are local wall-clock strings, so no
// timezone conversion is involved.
func MinutesOfDay(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:mm", hhmm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q, want HH:mm", hhmm)
	}
	min, err := strconv.Atoi(m)
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid time %q, want HH:mm", hhmm)
	}
	return hour*60 + min, nil
}
