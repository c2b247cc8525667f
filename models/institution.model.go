package models

import "time"

// Institution is a partner school or training provider.
type Institution struct {
	ID            uint      `json:"institution_id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	ContactNumber *string   `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
