package storage

import "aeropartner/models"

// GetPartnerDocuments returns a partner's submitted files, most recent
// upload first.
func (s *Storage) GetPartnerDocuments(partnerID uint) ([]models.PartnerDocument, error) {
	var docs []models.PartnerDocument
	err := s.db.Where("partner_id = ?", partnerID).
		Order("upload_date desc").
		Find(&docs).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return docs, nil
}

func (s *Storage) GetPartnerDocument(id uint) (*models.PartnerDocument, error) {
	var doc models.PartnerDocument
	if err := s.db.Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &doc, nil
}

func (s *Storage) CreatePartnerDocument(doc *models.PartnerDocument) error {
	return wrapErr(s.db.Create(doc).Error)
}

// UpdatePartnerDocument merges the supplied fields, used by the operator
// review flow to move a document out of pending.
func (s *Storage) UpdatePartnerDocument(id uint, updates map[string]interface{}) (*models.PartnerDocument, error) {
	res := s.db.Model(&models.PartnerDocument{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPartnerDocument(id)
}
