package pickup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/models"
	usecase "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
)

type memorySlotCache struct {
	entries map[string][]string
	gets    int
	sets    int
}

func newMemorySlotCache() *memorySlotCache {
	return &memorySlotCache{entries: map[string][]string{}}
}

func (c *memorySlotCache) GetSlots(_ context.Context, locationID uint, date string) ([]string, bool) {
	c.gets++
	slots, ok := c.entries[date]
	return slots, ok
}

func (c *memorySlotCache) SetSlots(_ context.Context, locationID uint, date string, slots []string) {
	c.sets++
	c.entries[date] = slots
}

func TestGetAvailableSlots_Grid(t *testing.T) {
	repo := newFakeRepo(t)
	repo.location.SlotDurationMinutes = 120
	clk := clock.FixedAt(mustInstant(t, "2026-05-01T08:00:00+02:00"))
	uc := usecase.NewGetAvailableSlots(repo, clk, nil)

	// Monday 10:00-18:00 with 120-minute slots.
	slots, err := uc.Execute(context.Background(), 1, "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "12:00", "14:00", "16:00"}, slots)
}

func TestGetAvailableSlots_ClosedDateEmpty(t *testing.T) {
	repo := newFakeRepo(t)
	clk := clock.FixedAt(mustInstant(t, "2026-05-01T08:00:00+02:00"))
	uc := usecase.NewGetAvailableSlots(repo, clk, nil)

	// Wednesday has no hours; outside the range has no schedule. Both empty.
	slots, err := uc.Execute(context.Background(), 1, "2026-05-06")
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = uc.Execute(context.Background(), 1, "2026-06-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlots_FullSlotDropped(t *testing.T) {
	repo := newFakeRepo(t)
	repo.location.SlotDurationMinutes = 120
	one := 1
	repo.location.MaxParcelsPerSlot = &one
	repo.pickups = []models.Pickup{
		{
			ID: 50, HouseholdID: 99, LocationID: 1,
			Earliest: mustInstant(t, "2026-05-04T12:00:00+02:00"),
			Latest:   mustInstant(t, "2026-05-04T14:00:00+02:00"),
		},
	}
	clk := clock.FixedAt(mustInstant(t, "2026-05-01T08:00:00+02:00"))
	uc := usecase.NewGetAvailableSlots(repo, clk, nil)

	slots, err := uc.Execute(context.Background(), 1, "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00", "16:00"}, slots)
}

// For today, starts at or before now are dropped; the cached entry keeps
// the full day so later requests still see it.
func TestGetAvailableSlots_TodayDropsPastStarts(t *testing.T) {
	repo := newFakeRepo(t)
	repo.location.SlotDurationMinutes = 120
	cache := newMemorySlotCache()
	clk := clock.FixedAt(mustInstant(t, "2026-05-04T13:00:00+02:00"))
	uc := usecase.NewGetAvailableSlots(repo, clk, cache)

	slots, err := uc.Execute(context.Background(), 1, "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "16:00"}, slots)

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, []string{"10:00", "12:00", "14:00", "16:00"}, cache.entries["2026-05-04"])

	// second call served from cache, past filter still applied
	slots, err = uc.Execute(context.Background(), 1, "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "16:00"}, slots)
	assert.Equal(t, 1, cache.sets)
}

func TestGetAvailableSlots_InvalidInput(t *testing.T) {
	repo := newFakeRepo(t)
	clk := clock.FixedAt(mustInstant(t, "2026-05-01T08:00:00+02:00"))
	uc := usecase.NewGetAvailableSlots(repo, clk, nil)

	_, err := uc.Execute(context.Background(), 1, "04/05/2026")
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), 999, "2026-05-04")
	require.Error(t, err)
}
