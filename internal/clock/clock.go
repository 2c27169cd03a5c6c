package clock

import (
	"time"

	"github.com/foodbridge/pickup-scheduler/internal/timezone"
)

// Clock is the only way "now" enters the scheduling core. Every use case
// takes one in its constructor so tests can pin arbitrary instants,
// including daylight-saving boundaries.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in the system timezone.
type System struct{}

func (System) Now() time.Time {
	return timezone.Now()
}

// Fixed always returns the same instant. Test harness only.
type Fixed struct {
	t time.Time
}

func FixedAt(t time.Time) Fixed {
	return Fixed{t: t.In(timezone.Location())}
}

func (f Fixed) Now() time.Time {
	return f.t
}
