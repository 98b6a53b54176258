package models

import "gorm.io/gorm"

// CourseDocument is static material attached to a catalog course.
type CourseDocument struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"not null"`
	Type       string `json:"type" gorm:"not null"` // material, assignment, certificate
	FileURL    string `json:"file_url" gorm:"not null"`
	IsRequired bool   `json:"is_required" gorm:"default:false"`
}
