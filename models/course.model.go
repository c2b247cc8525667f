package models

import "time"

// Course belongs to an institution and groups modules.
type Course struct {
	ID            uint        `json:"course_id" gorm:"primaryKey"`
	InstitutionID uint        `json:"institution_id" gorm:"index;not null"`
	Institution   Institution `json:"-" gorm:"foreignKey:InstitutionID;constraint:OnDelete:RESTRICT"`
	Title         string      `json:"title" gorm:"not null"`
	Description   string      `json:"description"`
	Status        string      `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, ARCHIVED
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Module represents a section within a course
type Module struct {
	ID         uint      `json:"module_id" gorm:"primaryKey"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	Course     Course    `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT"`
	Title      string    `json:"title" gorm:"not null"`
	OrderIndex int       `json:"order_index" gorm:"default:0"` // Module order in course
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
