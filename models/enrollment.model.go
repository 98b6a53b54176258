package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. Completed and dropped are terminal.
const (
	StatusEnrolled   = "enrolled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDropped    = "dropped"
)

// allowedTransitions is the closed set of valid status moves. Same-state
// updates and moves out of a terminal state are not in the set.
var allowedTransitions = map[string][]string{
	StatusEnrolled:   {StatusInProgress, StatusDropped},
	StatusInProgress: {StatusCompleted, StatusDropped},
}

// ValidTransition reports whether an enrollment may move from one status
// to another. Progress reaching 100 never transitions on its own; the
// caller must patch the status explicitly.
func ValidTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the known enrollment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusEnrolled, StatusInProgress, StatusCompleted, StatusDropped:
		return true
	}
	return false
}

// Enrollment links one student, one course and the enrolling partner.
// PartnerID is denormalized on the row so partner-scoped queries need no
// extra join and attribution survives any future student reassignment.
type Enrollment struct {
	gorm.Model
	StudentID            uint       `json:"student_id" gorm:"index;not null"`
	CourseID             uint       `json:"course_id" gorm:"index;not null"`
	PartnerID            uint       `json:"partner_id" gorm:"index;not null"`
	Status               string     `json:"status" gorm:"default:'enrolled'"` // enrolled, in_progress, completed, dropped
	Progress             float64    `json:"progress" gorm:"default:0"`        // completion percentage (0-100)
	Grade                *float64   `json:"grade"`                            // 0-10 scale, nil until graded
	StartDate            *time.Time `json:"start_date"`
	CompletionDate       *time.Time `json:"completion_date"` // set iff status is completed
	CertificateRequested bool       `json:"certificate_requested" gorm:"default:false"`
	CertificateIssued    bool       `json:"certificate_issued" gorm:"default:false"`

	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
	Partner *Partner `json:"partner,omitempty"`
}
