package models

import (
	"time"

	"gorm.io/datatypes"
)

// Minigame is a playable learning game.
type Minigame struct {
	ID          uint      `json:"minigame_id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GamePlay records one play session of a minigame by a user.
type GamePlay struct {
	ID         uint           `json:"gameplay_id" gorm:"primaryKey"`
	MinigameID uint           `json:"minigame_id" gorm:"index;not null"`
	Minigame   Minigame       `json:"-" gorm:"foreignKey:MinigameID;constraint:OnDelete:RESTRICT"`
	UserID     uint           `json:"user_id" gorm:"index;not null"`
	Score      int            `json:"score" gorm:"default:0"`
	Stats      datatypes.JSON `json:"stats"` // raw per-session counters from the client
	PlayedAt   time.Time      `json:"played_at"`
}
