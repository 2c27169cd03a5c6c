package clock

import "time"

// Weekday is the closed set of day names used by schedule configuration.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// ordered Monday-first, ISO week semantics
var weekdays = [7]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeekdayOf maps Go's Sunday-based weekday onto the Monday-first enum.
func WeekdayOf(w time.Weekday) Weekday {
	return weekdays[(int(w)+6)%7]
}

func Weekdays() [7]Weekday {
	return weekdays
}

func IsWeekday(s string) bool {
	for _, w := range weekdays {
		if string(w) == s {
			return true
		}
	}
	return false
}
