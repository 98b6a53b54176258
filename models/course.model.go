package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course difficulty levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course is a shared catalog entry, not scoped to any partner. Courses are
// soft-deleted: IsActive=false hides them from listings while keeping the
// detail view working for existing enrollments.
type Course struct {
	gorm.Model
	Name             string                      `json:"name" gorm:"not null"`
	Description      string                      `json:"description"`
	Duration         int64                       `json:"duration" gorm:"default:0"` // duration in hours
	Instructors      datatypes.JSONSlice[string] `json:"instructors"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements"`
	ImageURL         string                      `json:"image_url"`
	Level            string                      `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Rating           float64                     `json:"rating" gorm:"default:0"`
	EnrolledStudents int                         `json:"enrolled_students" gorm:"default:0"`
	// No gorm default on purpose: an explicit false on create must
	// reach the database, so the API layer always sets this field.
	IsActive bool `json:"is_active"`
}
