package models

import "time"

// User mirrors the account record managed by the external identity
// provider. The ID is the provider's stable subject identifier, so the
// primary key is a string rather than an auto-increment.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           *string   `json:"email" gorm:"uniqueIndex"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
