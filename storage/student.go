package storage

import "aeropartner/models"

// GetPartnerStudents returns a partner's full roster, ordered by name.
func (s *Storage) GetPartnerStudents(partnerID uint) ([]models.Student, error) {
	var students []models.Student
	err := s.db.Where("partner_id = ?", partnerID).
		Order("name asc").
		Find(&students).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return students, nil
}

func (s *Storage) GetStudent(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where("id = ?", id).First(&student).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &student, nil
}

func (s *Storage) CreateStudent(student *models.Student) error {
	return wrapErr(s.db.Create(student).Error)
}

// UpdateStudent merges the supplied fields into an existing student.
func (s *Storage) UpdateStudent(id uint, updates map[string]interface{}) (*models.Student, error) {
	res := s.db.Model(&models.Student{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetStudent(id)
}
