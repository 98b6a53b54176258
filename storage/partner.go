package storage

import "aeropartner/models"

// GetPartnerByUserID resolves the partner record owned by a user. This
// is the authorization anchor for almost every other call.
func (s *Storage) GetPartnerByUserID(userID string) (*models.Partner, error) {
	var partner models.Partner
	if err := s.db.Where("user_id = ?", userID).First(&partner).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &partner, nil
}

func (s *Storage) GetPartner(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := s.db.Where("id = ?", id).First(&partner).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &partner, nil
}

// GetAllPartners returns every partner. Used by the counter
// reconciliation job, not by request handlers.
func (s *Storage) GetAllPartners() ([]models.Partner, error) {
	var partners []models.Partner
	if err := s.db.Order("id asc").Find(&partners).Error; err != nil {
		return nil, wrapErr(err)
	}
	return partners, nil
}

// CreatePartner inserts a new partner. A duplicate utm tag surfaces as
// ErrConflict and leaves no row behind.
func (s *Storage) CreatePartner(partner *models.Partner) error {
	return wrapErr(s.db.Create(partner).Error)
}

// UpdatePartner merges the supplied fields into an existing partner and
// returns the full updated record. ErrNotFound if the id does not exist.
func (s *Storage) UpdatePartner(id uint, updates map[string]interface{}) (*models.Partner, error) {
	res := s.db.Model(&models.Partner{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPartner(id)
}
