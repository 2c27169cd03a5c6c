package models

import "time"

// Pickup is one booked food parcel pickup window. Identity is the tuple
// (household, location, earliest, latest), location included, so moving a
// household to another location at the same window is a different row.
// The unique index backs the conflict-tolerant reconciliation insert.
type Pickup struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HouseholdID uint      `gorm:"uniqueIndex:idx_pickup_identity" json:"household_id"`
	Household   Household `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"household"`

	LocationID uint     `gorm:"uniqueIndex:idx_pickup_identity" json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"location"`

	// Pickup window, stored UTC. Earliest < Latest always.
	Earliest time.Time `gorm:"uniqueIndex:idx_pickup_identity" json:"earliest"`
	Latest   time.Time `gorm:"uniqueIndex:idx_pickup_identity" json:"latest"`

	IsPickedUp bool       `gorm:"default:false" json:"is_picked_up"`
	NoShowAt   *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
