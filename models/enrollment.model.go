package models

import "time"

// Enrollment tracks a user's enrollment in a course
type Enrollment struct {
	ID        uint      `json:"enrollment_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Course    Course    `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT"`
	Status    string    `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Has-one over the shared id: transactions.id references
	// enrollments.id, so a payment cannot outlive or precede its
	// enrollment.
	Transaction *Transaction `json:"-" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:RESTRICT"`
}
