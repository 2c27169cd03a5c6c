package clock

import (
	"fmt"
	"time"

	"github.com/foodbridge/pickup-scheduler/internal/timezone"
)

// Zoned wraps one instant pinned to the system timezone. All day/week
// boundary math and wall-clock rendering goes through it, so the host
// process timezone never leaks into scheduling decisions.
type Zoned struct {
	t time.Time
}

func At(t time.Time) Zoned {
	return Zoned{t: t.In(timezone.Location())}
}

// Parse accepts an RFC3339 instant. Invalid input is an error, never a
// silent fallback to "now".
func Parse(iso string) (Zoned, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return Zoned{}, fmt.Errorf("clock: invalid instant %q: %w", iso, err)
	}
	return At(t), nil
}

// ParseLocalDate accepts "2006-01-02" and pins it to local midnight.
func ParseLocalDate(date string) (Zoned, error) {
	t, err := time.ParseInLocation("2006-01-02", date, timezone.Location())
	if err != nil {
		return Zoned{}, fmt.Errorf("clock: invalid date %q: %w", date, err)
	}
	return Zoned{t: t}, nil
}

func (z Zoned) Time() time.Time {
	return z.t
}

func (z Zoned) Weekday() Weekday {
	return WeekdayOf(z.t.Weekday())
}

// --------------------------------------------------
// Day and week boundaries
// --------------------------------------------------

// StartOfDay is 00:00:00.000 local on z's local calendar day. time.Date
// resolves the UTC offset per wall time, so the boundary stays correct on
// daylight-saving transition days.
func (z Zoned) StartOfDay() Zoned {
	y, m, d := z.t.Date()
	return Zoned{t: time.Date(y, m, d, 0, 0, 0, 0, timezone.Location())}
}

// EndOfDay is 23:59:59.999 local on z's local calendar day. The offset
// used here may differ from StartOfDay's on a transition day.
func (z Zoned) EndOfDay() Zoned {
	y, m, d := z.t.Date()
	return Zoned{t: time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), timezone.Location())}
}

// StartOfWeek is Monday 00:00:00.000 local of z's ISO week.
func (z Zoned) StartOfWeek() Zoned {
	back := (int(z.t.Weekday()) + 6) % 7
	y, m, d := z.t.AddDate(0, 0, -back).Date()
	return Zoned{t: time.Date(y, m, d, 0, 0, 0, 0, timezone.Location())}
}

// EndOfWeek is Sunday 23:59:59.999 local of z's ISO week.
func (z Zoned) EndOfWeek() Zoned {
	fwd := 6 - (int(z.t.Weekday())+6)%7
	y, m, d := z.t.AddDate(0, 0, fwd).Date()
	return Zoned{t: time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), timezone.Location())}
}

// --------------------------------------------------
// Comparison (instant arithmetic, zone-agnostic)
// --------------------------------------------------

// IsBetween is inclusive on both ends. Callers comparing against a day
// must pass StartOfDay/EndOfDay boundaries; two identical raw midnight
// instants match nothing but exact midnight.
func (z Zoned) IsBetween(a, b Zoned) bool {
	return !z.t.Before(a.t) && !z.t.After(b.t)
}

func (z Zoned) IsAfter(other Zoned) bool {
	return z.t.After(other.t)
}

func (z Zoned) IsBefore(other Zoned) bool {
	return z.t.Before(other.t)
}

// AddMinutes is instant arithmetic; a minute is sixty real seconds
// regardless of any transition crossed.
func (z Zoned) AddMinutes(n int) Zoned {
	return Zoned{t: z.t.Add(time.Duration(n) * time.Minute)}
}

// --------------------------------------------------
// Rendering
// --------------------------------------------------

func (z Zoned) TimeString() string {
	return z.t.Format("15:04")
}

func (z Zoned) DateString() string {
	return z.t.Format("2006-01-02")
}

func (z Zoned) Format(layout string) string {
	return z.t.Format(layout)
}
