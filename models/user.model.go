package models

import "time"

type User struct {
	ID        uint      `json:"user_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'LEARNER'"` // LEARNER, ADMIN
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceToken is a platform push token registered by a learner's device.
// Tokens are unique; re-registering one moves it to the new owner.
type DeviceToken struct {
	ID        uint      `json:"device_token_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	Platform  string    `json:"platform" gorm:"default:'android'"` // android, ios
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
