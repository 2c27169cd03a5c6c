package dto

import "time"

type PickupListDTO struct {
	ID            uint       `json:"id"`
	HouseholdName string     `json:"household_name"`
	Earliest      time.Time  `json:"earliest"`
	Latest        time.Time  `json:"latest"`
	IsPickedUp    bool       `json:"is_picked_up"`
	NoShowAt      *time.Time `json:"no_show_at"`
	OutsideHours  bool       `json:"outside_hours"`
}
