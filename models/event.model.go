package models

import (
	"time"

	"gorm.io/gorm"
)

// Event types
const (
	EventWorkshop   = "workshop"
	EventWebinar    = "webinar"
	EventConference = "conference"
)

// Event is a scheduled activity open to all partners.
type Event struct {
	gorm.Model
	Title                  string    `json:"title" gorm:"not null"`
	Description            string    `json:"description"`
	EventDate              time.Time `json:"event_date" gorm:"not null"`
	Duration               int64     `json:"duration" gorm:"default:0"` // duration in minutes
	Type                   string    `json:"type" gorm:"not null"`      // workshop, webinar, conference
	IsOnline               bool      `json:"is_online"` // set by the API layer, no gorm default
	MaxParticipants        *int      `json:"max_participants"` // nil means unlimited
	RegisteredParticipants int       `json:"registered_participants" gorm:"default:0"`
	IsActive               bool      `json:"is_active"` // set by the API layer, no gorm default
}

// EventRegistration records one partner signing up for one event.
type EventRegistration struct {
	gorm.Model
	PartnerID        uint      `json:"partner_id" gorm:"index;not null"`
	EventID          uint      `json:"event_id" gorm:"index;not null"`
	RegistrationDate time.Time `json:"registration_date"`
	Attended         bool      `json:"attended" gorm:"default:false"`

	Event *Event `json:"event,omitempty"`
}
