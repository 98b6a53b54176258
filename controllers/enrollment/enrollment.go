package enrollmentController

import (
	"errors"
	"log"
	"time"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/stats"
	"aeropartner/storage"
	"aeropartner/utils"
	enrollmentValidator "aeropartner/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	Storage *storage.Storage
	Mailer  utils.Mailer
}

func New(st *storage.Storage, mailer utils.Mailer) *EnrollmentController {
	return &EnrollmentController{Storage: st, Mailer: mailer}
}

// resolvePartner maps the authenticated subject to its partner record.
func (ctrl *EnrollmentController) resolvePartner(c *fiber.Ctx) (*models.Partner, error) {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	partner, err := ctrl.Storage.GetPartnerByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner!", nil)
	}
	return partner, nil
}

// GetEnrollments returns the caller's enrollments joined with course and
// student, most recent first.
func (ctrl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	enrollments, err := ctrl.Storage.GetPartnerEnrollments(partner.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// CreateEnrollment enrolls one of the caller's students into a course.
// The enrollment row and the partner/course counters move in a single
// transaction so the counters cannot diverge from the rows.
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// The student must belong to the caller. Other partners' students
	// look like missing ones on purpose.
	student, err := ctrl.Storage.GetStudent(reqData.StudentID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && student.PartnerID != partner.ID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	course, err := ctrl.Storage.GetCourse(reqData.CourseID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if !course.IsActive {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	exists, err := ctrl.Storage.EnrollmentExists(student.ID, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if exists {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student already enrolled in this course!", nil)
	}

	now := time.Now()
	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		PartnerID: partner.ID,
		Status:    models.StatusEnrolled,
		Progress:  0,
		StartDate: &now,
	}

	err = ctrl.Storage.Transaction(func(tx *storage.Storage) error {
		if err := tx.CreateEnrollment(&enrollment); err != nil {
			return err
		}
		if _, err := tx.UpdatePartner(partner.ID, map[string]interface{}{
			"courses_in_progress": gorm.Expr("courses_in_progress + 1"),
		}); err != nil {
			return err
		}
		_, err := tx.UpdateCourse(course.ID, map[string]interface{}{
			"enrolled_students": gorm.Expr("enrolled_students + 1"),
		})
		return err
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully!", enrollment)
}

// UpdateEnrollment handles the PATCH surface: progress updates, grading,
// status transitions and certificate requests. Status moves are checked
// against the allowed transition set; a transition and the partner
// counter recompute share one transaction.
func (ctrl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := ctrl.Storage.GetEnrollment(enrollmentID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && enrollment.PartnerID != partner.ID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentUpdate").(*enrollmentValidator.UpdateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Progress != nil {
		updates["progress"] = *reqData.Progress
	}
	if reqData.Grade != nil {
		updates["grade"] = *reqData.Grade
	}
	if reqData.CertificateRequested != nil {
		// Requests are accepted regardless of status; see the product
		// gap notes. Un-requesting is refused once a certificate was
		// issued so issued always implies requested.
		if !*reqData.CertificateRequested && enrollment.CertificateIssued {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"certificate_requested": "Cannot withdraw a request after the certificate was issued!",
			})
		}
		updates["certificate_requested"] = *reqData.CertificateRequested
	}

	statusChanged := false
	if reqData.Status != nil && *reqData.Status != enrollment.Status {
		if !models.ValidTransition(enrollment.Status, *reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Invalid status transition from " + enrollment.Status + " to " + *reqData.Status + "!",
			})
		}
		updates["status"] = *reqData.Status
		statusChanged = true

		// CompletionDate is stamped server-side, exactly when the
		// enrollment completes, and never accepted from the client.
		if *reqData.Status == models.StatusCompleted {
			updates["completion_date"] = time.Now()
		}
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment unchanged.", enrollment)
	}

	var updated *models.Enrollment
	err = ctrl.Storage.Transaction(func(tx *storage.Storage) error {
		var txErr error
		updated, txErr = tx.UpdateEnrollment(enrollmentID, updates)
		if txErr != nil {
			return txErr
		}
		if !statusChanged {
			return nil
		}
		// A transition moves the denormalized partner counters, so
		// recompute them from the rows inside the same transaction.
		enrollments, txErr := tx.GetPartnerEnrollments(partner.ID)
		if txErr != nil {
			return txErr
		}
		snap := stats.PartnerSnapshot(enrollments)
		_, txErr = tx.UpdatePartner(partner.ID, map[string]interface{}{
			"completed_courses":   snap.CompletedCourses,
			"courses_in_progress": snap.CoursesInProgress,
			"completion_rate":     snap.CompletionRate,
		})
		return txErr
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", updated)
}

// IssueCertificate marks the certificate as issued. Admin only; requires
// a completed enrollment with a pending request, which keeps issued
// implying requested.
func (ctrl *EnrollmentController) IssueCertificate(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := ctrl.Storage.GetEnrollment(enrollmentID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	if !enrollment.CertificateRequested {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"certificate_requested": "No certificate request on this enrollment!",
		})
	}
	if enrollment.Status != models.StatusCompleted {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Certificate can only be issued for a completed enrollment!",
		})
	}
	if enrollment.CertificateIssued {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", nil)
	}

	updated, err := ctrl.Storage.UpdateEnrollment(enrollmentID, map[string]interface{}{
		"certificate_issued": true,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	certificateNumber := "CERT-" + uuid.NewString()
	ctrl.notifyCertificateIssued(enrollment, certificateNumber)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", fiber.Map{
		"enrollment":         updated,
		"certificate_number": certificateNumber,
	})
}

// notifyCertificateIssued emails the partner's account owner. Best
// effort: a mail failure never fails the request.
func (ctrl *EnrollmentController) notifyCertificateIssued(enrollment *models.Enrollment, certificateNumber string) {
	if ctrl.Mailer == nil {
		return
	}

	partner, err := ctrl.Storage.GetPartner(enrollment.PartnerID)
	if err != nil {
		log.Printf("Certificate mail skipped, partner %d lookup failed: %v", enrollment.PartnerID, err)
		return
	}
	user, err := ctrl.Storage.GetUser(partner.UserID)
	if err != nil || user.Email == nil {
		log.Printf("Certificate mail skipped, no email for partner %d", partner.ID)
		return
	}
	course, err := ctrl.Storage.GetCourse(enrollment.CourseID)
	if err != nil {
		log.Printf("Certificate mail skipped, course %d lookup failed: %v", enrollment.CourseID, err)
		return
	}

	if err := ctrl.Mailer.SendCertificateIssued(*user.Email, partner.Company, course.Name, certificateNumber); err != nil {
		log.Printf("Error sending certificate email for enrollment %d: %v", enrollment.ID, err)
	}
}
