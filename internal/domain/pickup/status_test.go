package pickup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

func requireBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected a business error, got %v", err)
	assert.Equal(t, code, be.Code)
}

func TestMarkPickedUp(t *testing.T) {
	p := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")

	require.NoError(t, pickup.MarkPickedUp(&p))
	assert.True(t, p.IsPickedUp)

	err := pickup.MarkPickedUp(&p)
	requireBusinessCode(t, err, "already_picked_up")
}

// Picking up clears a previously recorded no-show.
func TestMarkPickedUp_ClearsNoShow(t *testing.T) {
	noShowAt := instant(t, "2026-05-04T14:00:00+02:00")
	p := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")
	p.NoShowAt = &noShowAt

	require.NoError(t, pickup.MarkPickedUp(&p))
	assert.Nil(t, p.NoShowAt)
}

func TestMarkNoShow(t *testing.T) {
	p := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")

	// window still open
	err := pickup.MarkNoShow(&p, instant(t, "2026-05-04T13:15:00+02:00"))
	requireBusinessCode(t, err, "window_not_over")
	assert.Nil(t, p.NoShowAt)

	after := instant(t, "2026-05-04T13:30:00+02:00")
	require.NoError(t, pickup.MarkNoShow(&p, after))
	require.NotNil(t, p.NoShowAt)
	assert.Equal(t, after, *p.NoShowAt)

	err = pickup.MarkNoShow(&p, after)
	requireBusinessCode(t, err, "already_no_show")
}

func TestMarkNoShow_PickedUpWins(t *testing.T) {
	p := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")
	p.IsPickedUp = true

	err := pickup.MarkNoShow(&p, instant(t, "2026-05-04T14:00:00+02:00"))
	requireBusinessCode(t, err, "already_picked_up")
}

func TestCanReschedule(t *testing.T) {
	p := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")
	assert.NoError(t, pickup.CanReschedule(&p))

	p.IsPickedUp = true
	requireBusinessCode(t, pickup.CanReschedule(&p), "already_picked_up")
}

func TestCountOutsideHours(t *testing.T) {
	open := models.Schedule{
		Name:      "may hours",
		StartDate: instant(t, "2026-05-01T00:00:00+02:00"),
		EndDate:   instant(t, "2026-05-31T00:00:00+02:00"),
		Days: []models.ScheduleDay{
			{Weekday: "monday", IsOpen: true, OpeningTime: "10:00", ClosingTime: "18:00"},
		},
	}

	inside := stored(t, 1, 1, "2026-05-04T13:00:00+02:00", "2026-05-04T13:30:00+02:00")  // Monday, fits
	lateEnd := stored(t, 2, 1, "2026-05-04T17:45:00+02:00", "2026-05-04T18:15:00+02:00") // latest past close
	wrongDay := stored(t, 3, 1, "2026-05-05T13:00:00+02:00", "2026-05-05T13:30:00+02:00")

	got := pickup.CountOutsideHours([]models.Pickup{inside, lateEnd, wrongDay}, []models.Schedule{open})
	assert.Equal(t, 2, got)

	assert.False(t, pickup.IsOutsideHours(&inside, []models.Schedule{open}))
	assert.True(t, pickup.IsOutsideHours(&inside, nil), "no schedules means nothing is inside hours")
}
