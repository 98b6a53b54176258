package models

import (
	"time"

	"gorm.io/gorm"
)

// Partner document review statuses
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// PartnerDocument is a partner-submitted file tied to a specific
// enrollment, reviewed by an operator.
type PartnerDocument struct {
	gorm.Model
	PartnerID    uint      `json:"partner_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"index;not null"`
	DocumentName string    `json:"document_name" gorm:"not null"`
	FileURL      string    `json:"file_url" gorm:"not null"`
	UploadDate   time.Time `json:"upload_date"`
	Status       string    `json:"status" gorm:"default:'pending'"` // pending, approved, rejected
}
