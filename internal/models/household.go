package models

import (
	"time"

	"github.com/google/uuid"
)

// Household is the recipient of food parcel pickups. PublicID is the
// identifier exposed outside the staff API.
type Household struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Locked bool `gorm:"default:false" json:"locked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
