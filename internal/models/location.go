package models

import "time"

type Location struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Address string `gorm:"size:255" json:"address"`

	MaxParcelsPerDay  *int `json:"max_parcels_per_day"`
	MaxParcelsPerSlot *int `json:"max_parcels_per_slot"`

	SlotDurationMinutes int `gorm:"default:15" json:"slot_duration_minutes"`

	// Denormalized count of future, not picked up pickups that no longer
	// fit any open schedule. Recomputed after mutating operations, never
	// maintained incrementally.
	OutsideHoursCount int `gorm:"default:0" json:"outside_hours_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
