package models

import "time"

// LessonTypes are the content kinds a lesson may carry.
var LessonTypes = []string{"video", "quiz", "assignment", "reading", "interactive", "live_session"}

// IsValidLessonType reports whether t is one of LessonTypes.
func IsValidLessonType(t string) bool {
	for _, lt := range LessonTypes {
		if t == lt {
			return true
		}
	}
	return false
}

// Lesson is a single unit of content inside a module.
type Lesson struct {
	ID         uint      `json:"lesson_id" gorm:"primaryKey"`
	ModuleID   uint      `json:"module_id" gorm:"index;not null"`
	Module     Module    `json:"-" gorm:"foreignKey:ModuleID;constraint:OnDelete:RESTRICT"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content"`
	VideoURL   *string   `json:"video_url"`
	LessonType string    `json:"lesson_type" gorm:"not null"`
	OrderIndex int       `json:"order_index" gorm:"default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
