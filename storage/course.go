package storage

import "aeropartner/models"

// GetAllCourses returns the active catalog, ordered by name.
func (s *Storage) GetAllCourses() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("is_active = ?", true).
		Order("name asc").
		Find(&courses).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return courses, nil
}

// GetCourse returns a course by id, including deactivated ones: the
// detail view must keep working for enrollments into a course that was
// later pulled from the catalog.
func (s *Storage) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &course, nil
}

func (s *Storage) CreateCourse(course *models.Course) error {
	return wrapErr(s.db.Create(course).Error)
}

// UpdateCourse merges the supplied fields into an existing course.
func (s *Storage) UpdateCourse(id uint, updates map[string]interface{}) (*models.Course, error) {
	res := s.db.Model(&models.Course{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetCourse(id)
}

// GetCourseDocuments returns the static material attached to a course.
func (s *Storage) GetCourseDocuments(courseID uint) ([]models.CourseDocument, error) {
	var docs []models.CourseDocument
	if err := s.db.Where("course_id = ?", courseID).Find(&docs).Error; err != nil {
		return nil, wrapErr(err)
	}
	return docs, nil
}

func (s *Storage) CreateCourseDocument(doc *models.CourseDocument) error {
	return wrapErr(s.db.Create(doc).Error)
}
