package storage

import (
	"time"

	"aeropartner/models"

	"gorm.io/gorm/clause"
)

// GetUser returns the user with the given external subject id.
func (s *Storage) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

// UpsertUser inserts the user if the id is unseen, otherwise overwrites
// the mutable profile fields and bumps UpdatedAt. The identity provider
// calls this on every login, so repeated identical calls must be safe.
func (s *Storage) UpsertUser(user models.User) (*models.User, error) {
	user.UpdatedAt = time.Now()
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return s.GetUser(user.ID)
}
