package storage

import "aeropartner/models"

// GetPartnerEnrollments returns all enrollments for a partner, each
// joined with its course and student, most recent first.
func (s *Storage) GetPartnerEnrollments(partnerID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("partner_id = ?", partnerID).
		Preload("Course").
		Preload("Student").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return enrollments, nil
}

// GetCourseEnrollments returns all enrollments for a course joined with
// student and partner. Used by course-management views; not scoped to a
// single partner.
func (s *Storage) GetCourseEnrollments(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("course_id = ?", courseID).
		Preload("Student").
		Preload("Partner").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return enrollments, nil
}

func (s *Storage) GetEnrollment(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("id = ?", id).First(&enrollment).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &enrollment, nil
}

// EnrollmentExists reports whether the student already has an enrollment
// in the course, in any status.
func (s *Storage) EnrollmentExists(studentID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

// CreateEnrollment inserts a new enrollment row. It does not touch the
// partner or course counters; callers compose those updates inside a
// Transaction.
func (s *Storage) CreateEnrollment(enrollment *models.Enrollment) error {
	return wrapErr(s.db.Create(enrollment).Error)
}

// UpdateEnrollment merges the supplied fields into an existing
// enrollment. Used for progress updates, status transitions and the
// certificate flags alike.
func (s *Storage) UpdateEnrollment(id uint, updates map[string]interface{}) (*models.Enrollment, error) {
	res := s.db.Model(&models.Enrollment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetEnrollment(id)
}
