package models

import "gorm.io/gorm"

// Partner classification tiers
const (
	ClassificationBronze = "bronze"
	ClassificationSilver = "silver"
	ClassificationGold   = "gold"
)

// Partner is the company-level account owned by exactly one user. The
// counter fields are denormalized aggregates over the partner's
// enrollments, maintained by the API layer and reconciled by the nightly
// stats job.
type Partner struct {
	gorm.Model
	UserID            string  `json:"user_id" gorm:"index;not null"`
	Company           string  `json:"company" gorm:"not null"`
	Classification    string  `json:"classification" gorm:"default:'bronze'"` // bronze, silver, gold
	UtmTag            string  `json:"utm_tag" gorm:"uniqueIndex;not null"`
	TotalScore        int     `json:"total_score" gorm:"default:0"`
	CompletedCourses  int     `json:"completed_courses" gorm:"default:0"`
	CoursesInProgress int     `json:"courses_in_progress" gorm:"default:0"`
	CompletionRate    float64 `json:"completion_rate" gorm:"default:0"` // percentage, 2 decimals
}
