package pickup

import (
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// IsOutsideHours reports whether a pickup window no longer fits any open
// schedule at its location.
func IsOutsideHours(p *models.Pickup, schedules []models.Schedule) bool {
	return !schedule.IsWindowAvailable(clock.At(p.Earliest), clock.At(p.Latest), schedules)
}

// CountOutsideHours is the source computation behind the location's
// denormalized outside-hours counter. Callers pass future, not picked up
// pickups.
func CountOutsideHours(pickups []models.Pickup, schedules []models.Schedule) int {
	n := 0
	for i := range pickups {
		if IsOutsideHours(&pickups[i], schedules) {
			n++
		}
	}
	return n
}
