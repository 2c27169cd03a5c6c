package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/timezone"
)

func mustParse(t *testing.T, iso string) clock.Zoned {
	t.Helper()
	z, err := clock.Parse(iso)
	require.NoError(t, err)
	return z
}

func TestParse_InvalidInputFailsFast(t *testing.T) {
	_, err := clock.Parse("not-a-date")
	require.Error(t, err)

	_, err = clock.Parse("2026-03-29")
	require.Error(t, err, "bare dates are not instants")

	_, err = clock.ParseLocalDate("29/03/2026")
	require.Error(t, err)
}

func TestDayBoundaries_OrdinaryDay(t *testing.T) {
	z := mustParse(t, "2026-06-15T12:30:00+02:00")

	assert.Equal(t, "2026-06-15 00:00:00.000", z.StartOfDay().Format("2006-01-02 15:04:05.000"))
	assert.Equal(t, "2026-06-15 23:59:59.999", z.EndOfDay().Format("2006-01-02 15:04:05.000"))
}

// Stockholm springs forward 2026-03-29: 02:00 CET becomes 03:00 CEST. The
// UTC offset at local midnight (+01:00) differs from the offset at the
// end of the day (+02:00); both boundaries must still render as the local
// day edges.
func TestDayBoundaries_SpringForward(t *testing.T) {
	z := mustParse(t, "2026-03-29T15:00:00+02:00")

	start := z.StartOfDay()
	end := z.EndOfDay()

	assert.Equal(t, "00:00", start.TimeString())
	assert.Equal(t, "23:59", end.TimeString())
	assert.Equal(t, "2026-03-29", start.DateString())
	assert.Equal(t, "2026-03-29", end.DateString())

	_, startOffset := start.Time().Zone()
	_, endOffset := end.Time().Zone()
	assert.Equal(t, 3600, startOffset, "midnight is still CET")
	assert.Equal(t, 7200, endOffset, "end of day is CEST")

	// 23h real day
	assert.Equal(t, 23*time.Hour-time.Millisecond, end.Time().Sub(start.Time()))

	assert.True(t, z.IsBetween(start, end))
}

func TestDayBoundaries_FallBack(t *testing.T) {
	z := mustParse(t, "2026-10-25T12:00:00+01:00")

	start := z.StartOfDay()
	end := z.EndOfDay()

	assert.Equal(t, "00:00", start.TimeString())
	assert.Equal(t, "23:59", end.TimeString())

	// 25h real day
	assert.Equal(t, 25*time.Hour-time.Millisecond, end.Time().Sub(start.Time()))
}

// Regression guard: a 13:00 appointment on date D must test inside
// [startOfDay(D), endOfDay(D)]. Comparing against two identical raw
// midnight instants matches nothing but exact midnight.
func TestIsBetween_FullDaySpanVersusRawMidnight(t *testing.T) {
	appt := mustParse(t, "2026-04-10T13:00:00+02:00")
	midnight := appt.StartOfDay()

	assert.True(t, appt.IsBetween(midnight, appt.EndOfDay()))
	assert.False(t, appt.IsBetween(midnight, midnight))
	assert.True(t, midnight.IsBetween(midnight, midnight), "inclusive at exact equality")
}

func TestWeekBoundaries(t *testing.T) {
	// 2026-04-08 is a Wednesday.
	z := mustParse(t, "2026-04-08T09:00:00+02:00")

	assert.Equal(t, "2026-04-06", z.StartOfWeek().DateString())
	assert.Equal(t, clock.Monday, z.StartOfWeek().Weekday())
	assert.Equal(t, "00:00", z.StartOfWeek().TimeString())

	assert.Equal(t, "2026-04-12", z.EndOfWeek().DateString())
	assert.Equal(t, clock.Sunday, z.EndOfWeek().Weekday())
	assert.Equal(t, "23:59", z.EndOfWeek().TimeString())
}

func TestWeekdayName_UsesLocalDayNotUTCDay(t *testing.T) {
	// 23:30 UTC on Saturday is already Sunday 01:30 in Stockholm (CEST).
	z := mustParse(t, "2026-06-13T23:30:00Z")

	assert.Equal(t, clock.Sunday, z.Weekday())
	assert.Equal(t, "2026-06-14", z.DateString())
}

func TestAddMinutes_AcrossSpringForward(t *testing.T) {
	// 01:30 CET plus 60 real minutes lands on 03:30 CEST.
	z := mustParse(t, "2026-03-29T01:30:00+01:00")

	later := z.AddMinutes(60)
	assert.Equal(t, "03:30", later.TimeString())
}

func TestSameInstantAgreesOnLocalFields(t *testing.T) {
	a := mustParse(t, "2026-01-10T17:45:00+01:00")
	b := clock.At(a.Time().UTC())

	assert.Equal(t, a.DateString(), b.DateString())
	assert.Equal(t, a.TimeString(), b.TimeString())
	assert.Equal(t, a.Weekday(), b.Weekday())
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 3, 29, 1, 59, 0, 0, time.UTC)
	clk := clock.FixedAt(instant)

	assert.True(t, clk.Now().Equal(instant))
	assert.Equal(t, timezone.Location(), clk.Now().Location())
}
