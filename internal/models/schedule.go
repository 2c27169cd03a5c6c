package models

import "time"

// Schedule is one dated weekly-hours configuration for a location.
// Date ranges of schedules at the same location may overlap; a date is
// open if any covering schedule's weekday entry is open.
type Schedule struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	LocationID uint `gorm:"index" json:"location_id"`

	Name string `gorm:"size:100" json:"name"`

	// Inclusive local date range, stored as local midnight.
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Days []ScheduleDay `gorm:"constraint:OnDelete:CASCADE" json:"days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleDay holds one weekday's open/closed flag and hours.
// At most one entry per weekday per schedule.
type ScheduleDay struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ScheduleID uint `gorm:"index" json:"schedule_id"`

	Weekday string `gorm:"size:10;not null" json:"weekday"`
	IsOpen  bool   `json:"is_open"`

	// "HH:mm" local wall-clock strings, present iff IsOpen.
	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`
}
