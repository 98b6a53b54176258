package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aeropartner/config"
	enrollmentController "aeropartner/controllers/enrollment"
	"aeropartner/database"
	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/routers/enrollmentRoutes"
	"aeropartner/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *storage.Storage) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	st := storage.New(db)
	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(st, nil))
	return app, st
}

func bearer(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(subject, "Test User", subject+"@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func request(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func seedPartnerAccount(t *testing.T, st *storage.Storage, subject, utmTag string) *models.Partner {
	t.Helper()
	email := subject + "@example.com"
	_, err := st.UpsertUser(models.User{ID: subject, Email: &email, FirstName: "Test"})
	require.NoError(t, err)

	partner := &models.Partner{
		UserID:         subject,
		Company:        "Partner " + utmTag,
		Classification: models.ClassificationBronze,
		UtmTag:         utmTag,
	}
	require.NoError(t, st.CreatePartner(partner))
	return partner
}

func seedStudent(t *testing.T, st *storage.Storage, partnerID uint, name string) *models.Student {
	t.Helper()
	student := &models.Student{PartnerID: partnerID, Name: name}
	require.NoError(t, st.CreateStudent(student))
	return student
}

func seedCourse(t *testing.T, st *storage.Storage, name string, active bool) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Level: models.LevelBeginner, IsActive: active}
	require.NoError(t, st.CreateCourse(course))
	return course
}

func TestCreateEnrollment(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-100")
	student := seedStudent(t, st, partner.ID, "Joao Silva")
	course := seedCourse(t, st, "Basic Piloting", true)

	resp, env := request(t, app, fiber.MethodPost, "/api/enrollments", bearer(t, "sub-1", "partner"), fiber.Map{
		"student_id": student.ID,
		"course_id":  course.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	enrollments, err := st.GetPartnerEnrollments(partner.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.StatusEnrolled, enrollments[0].Status)
	assert.Equal(t, 0.0, enrollments[0].Progress)
	require.NotNil(t, enrollments[0].StartDate)

	// Both denormalized counters moved with the insert.
	refreshed, err := st.GetPartner(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CoursesInProgress)

	refreshedCourse, err := st.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshedCourse.EnrolledStudents)
}

func TestCreateEnrollmentRejectsForeignStudent(t *testing.T) {
	app, st := setupApp(t)

	owner := seedPartnerAccount(t, st, "sub-1", "AGRO-101")
	student := seedStudent(t, st, owner.ID, "Maria Souza")
	course := seedCourse(t, st, "Crop Spraying", true)
	seedPartnerAccount(t, st, "sub-2", "AGRO-102")

	// sub-2 tries to enroll sub-1's student.
	resp, env := request(t, app, fiber.MethodPost, "/api/enrollments", bearer(t, "sub-2", "partner"), fiber.Map{
		"student_id": student.ID,
		"course_id":  course.ID,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Status)

	enrollments, err := st.GetPartnerEnrollments(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestCreateEnrollmentDuplicate(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-103")
	student := seedStudent(t, st, partner.ID, "Carlos Lima")
	course := seedCourse(t, st, "Night Flight", true)

	body := fiber.Map{"student_id": student.ID, "course_id": course.ID}
	auth := bearer(t, "sub-1", "partner")

	resp, _ := request(t, app, fiber.MethodPost, "/api/enrollments", auth, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := request(t, app, fiber.MethodPost, "/api/enrollments", auth, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)

	// The counter did not move twice.
	refreshed, err := st.GetPartner(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CoursesInProgress)
}

func TestCreateEnrollmentInactiveCourse(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-104")
	student := seedStudent(t, st, partner.ID, "Ana Reis")
	course := seedCourse(t, st, "Retired Course", false)

	resp, _ := request(t, app, fiber.MethodPost, "/api/enrollments", bearer(t, "sub-1", "partner"), fiber.Map{
		"student_id": student.ID,
		"course_id":  course.ID,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateEnrollmentInvalidTransition(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-105")
	student := seedStudent(t, st, partner.ID, "Pedro Alves")
	course := seedCourse(t, st, "Advanced Maneuvers", true)

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	// enrolled cannot jump straight to completed.
	resp, env := request(t, app, fiber.MethodPatch,
		fmt.Sprintf("/api/enrollments/%d", enrollment.ID),
		bearer(t, "sub-1", "partner"),
		fiber.Map{"status": models.StatusCompleted})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Status)

	unchanged, err := st.GetEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnrolled, unchanged.Status)
}

func TestUpdateEnrollmentLifecycle(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-106")
	student := seedStudent(t, st, partner.ID, "Rita Costa")
	course := seedCourse(t, st, "Thermal Imaging", true)

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	auth := bearer(t, "sub-1", "partner")
	path := fmt.Sprintf("/api/enrollments/%d", enrollment.ID)

	resp, _ := request(t, app, fiber.MethodPatch, path, auth, fiber.Map{
		"status":   models.StatusInProgress,
		"progress": 40,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = request(t, app, fiber.MethodPatch, path, auth, fiber.Map{
		"status":   models.StatusCompleted,
		"progress": 100,
		"grade":    9.5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated, err := st.GetEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, 100.0, updated.Progress)
	require.NotNil(t, updated.Grade)
	assert.Equal(t, 9.5, *updated.Grade)
	require.NotNil(t, updated.CompletionDate, "completion date is stamped server-side")

	// The partner counters were recomputed from the rows.
	refreshed, err := st.GetPartner(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CompletedCourses)
	assert.Equal(t, 0, refreshed.CoursesInProgress)
	assert.Equal(t, 100.0, refreshed.CompletionRate)
}

func TestUpdateEnrollmentOtherPartnerReadsAsMissing(t *testing.T) {
	app, st := setupApp(t)

	owner := seedPartnerAccount(t, st, "sub-1", "AGRO-107")
	student := seedStudent(t, st, owner.ID, "Bruno Dias")
	course := seedCourse(t, st, "Mapping Basics", true)
	seedPartnerAccount(t, st, "sub-2", "AGRO-108")

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: owner.ID,
		Status: models.StatusEnrolled,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	resp, _ := request(t, app, fiber.MethodPatch,
		fmt.Sprintf("/api/enrollments/%d", enrollment.ID),
		bearer(t, "sub-2", "partner"),
		fiber.Map{"progress": 50})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCertificateRequestAcceptedBeforeCompletion(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-109")
	student := seedStudent(t, st, partner.ID, "Lia Ramos")
	course := seedCourse(t, st, "Ground School", true)

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status: models.StatusEnrolled,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	// Requests are accepted on any status; issuing is where completion
	// is enforced.
	resp, _ := request(t, app, fiber.MethodPatch,
		fmt.Sprintf("/api/enrollments/%d", enrollment.ID),
		bearer(t, "sub-1", "partner"),
		fiber.Map{"certificate_requested": true})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated, err := st.GetEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.True(t, updated.CertificateRequested)
	assert.False(t, updated.CertificateIssued)
}

func TestIssueCertificate(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-110")
	student := seedStudent(t, st, partner.ID, "Igor Neves")
	course := seedCourse(t, st, "Certification Prep", true)

	enrollment := models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status:               models.StatusCompleted,
		Progress:             100,
		CertificateRequested: true,
	}
	require.NoError(t, st.CreateEnrollment(&enrollment))

	path := fmt.Sprintf("/api/enrollments/%d/certificate", enrollment.ID)

	// Partners cannot issue.
	resp, _ := request(t, app, fiber.MethodPost, path, bearer(t, "sub-1", "partner"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env := request(t, app, fiber.MethodPost, path, bearer(t, "admin-1", "admin"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	var payload struct {
		CertificateNumber string `json:"certificate_number"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.True(t, strings.HasPrefix(payload.CertificateNumber, "CERT-"))

	updated, err := st.GetEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.True(t, updated.CertificateIssued)

	// Issuing twice is a conflict.
	resp, _ = request(t, app, fiber.MethodPost, path, bearer(t, "admin-1", "admin"), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	app, st := setupApp(t)

	partner := seedPartnerAccount(t, st, "sub-1", "AGRO-111")
	student := seedStudent(t, st, partner.ID, "Vera Pinto")
	course := seedCourse(t, st, "Intro Flight", true)

	enrollment := &models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, PartnerID: partner.ID,
		Status:               models.StatusEnrolled,
		CertificateRequested: true,
	}
	require.NoError(t, st.CreateEnrollment(enrollment))

	resp, _ := request(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/enrollments/%d/certificate", enrollment.ID),
		bearer(t, "admin-1", "admin"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	unchanged, err := st.GetEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.False(t, unchanged.CertificateIssued)
}

func TestEnrollmentEndpointsRequireAuth(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := request(t, app, fiber.MethodGet, "/api/enrollments", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
