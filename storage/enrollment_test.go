package storage

import (
	"testing"
	"time"

	"aeropartner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListPartnerEnrollments(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-010")
	student := seedStudent(t, st, partner.ID, "Joao Silva")
	course := seedCourse(t, st, "Basic Piloting", true)

	now := time.Now()
	enrollment := &models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		PartnerID: partner.ID,
		Status:    models.StatusEnrolled,
		Progress:  0,
		StartDate: &now,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	list, err := st.GetPartnerEnrollments(partner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, models.StatusEnrolled, got.Status)
	assert.Equal(t, 0.0, got.Progress)
	assert.Nil(t, got.Grade)
	assert.Nil(t, got.CompletionDate)

	// Joined course and student ride along.
	require.NotNil(t, got.Course)
	assert.Equal(t, "Basic Piloting", got.Course.Name)
	require.NotNil(t, got.Student)
	assert.Equal(t, "Joao Silva", got.Student.Name)

	// Another partner sees nothing.
	other := seedPartner(t, st, "sub-2", "AGRO-011")
	empty, err := st.GetPartnerEnrollments(other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetPartnerEnrollmentsOrdering(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-012")
	student := seedStudent(t, st, partner.ID, "Maria Souza")
	first := seedCourse(t, st, "Course A", true)
	second := seedCourse(t, st, "Course B", true)

	old := time.Now().Add(-time.Hour)
	require.NoError(t, st.CreateEnrollment(&models.Enrollment{
		Model:     gormModelWithCreatedAt(old),
		StudentID: student.ID, CourseID: first.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}))
	require.NoError(t, st.CreateEnrollment(&models.Enrollment{
		StudentID: student.ID, CourseID: second.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}))

	list, err := st.GetPartnerEnrollments(partner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Most recent first.
	assert.Equal(t, second.ID, list[0].CourseID)
	assert.Equal(t, first.ID, list[1].CourseID)
}

func TestGetCourseEnrollmentsJoinsPartner(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-013")
	student := seedStudent(t, st, partner.ID, "Carlos Lima")
	course := seedCourse(t, st, "Crop Spraying", true)

	require.NoError(t, st.CreateEnrollment(&models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}))

	list, err := st.GetCourseEnrollments(course.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Partner)
	assert.Equal(t, partner.UtmTag, list[0].Partner.UtmTag)
	require.NotNil(t, list[0].Student)
	assert.Equal(t, "Carlos Lima", list[0].Student.Name)
}

func TestEnrollmentExists(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-014")
	student := seedStudent(t, st, partner.ID, "Ana Reis")
	course := seedCourse(t, st, "Night Flight", true)

	exists, err := st.EnrollmentExists(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, st.CreateEnrollment(&models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}))

	exists, err = st.EnrollmentExists(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUpdateEnrollment(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-015")
	student := seedStudent(t, st, partner.ID, "Pedro Alves")
	course := seedCourse(t, st, "Advanced Maneuvers", true)

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	done := time.Now()
	updated, err := st.UpdateEnrollment(enrollment.ID, map[string]interface{}{
		"status":          models.StatusCompleted,
		"progress":        100.0,
		"completion_date": done,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, 100.0, updated.Progress)
	require.NotNil(t, updated.CompletionDate)

	// Certificate flag update is the same merge path.
	updated, err = st.UpdateEnrollment(enrollment.ID, map[string]interface{}{
		"certificate_requested": true,
	})
	require.NoError(t, err)
	assert.True(t, updated.CertificateRequested)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	_, err = st.UpdateEnrollment(9999, map[string]interface{}{"progress": 10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	st := setupStorage(t)

	partner := seedPartner(t, st, "sub-1", "AGRO-016")
	student := seedStudent(t, st, partner.ID, "Rita Costa")
	course := seedCourse(t, st, "Thermal Imaging", true)

	err := st.Transaction(func(tx *Storage) error {
		if err := tx.CreateEnrollment(&models.Enrollment{
			StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
			Status: models.StatusEnrolled,
		}); err != nil {
			return err
		}
		// Counter update targets a missing partner; the whole unit
		// must roll back.
		_, err := tx.UpdatePartner(9999, map[string]interface{}{
			"courses_in_progress": 1,
		})
		return err
	})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := st.GetPartnerEnrollments(partner.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "enrollment insert should have rolled back")
}
