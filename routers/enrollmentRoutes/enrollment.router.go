package enrollmentRoutes

import (
	enrollmentController "aeropartner/controllers/enrollment"
	"aeropartner/middleware"
	enrollmentValidator "aeropartner/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes wires the partner-scoped enrollment endpoints.
func SetupEnrollmentRoutes(app *fiber.App, ctrl *enrollmentController.EnrollmentController) {
	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Get("/", middleware.JWTMiddleware, ctrl.GetEnrollments)
	enrollmentGroup.Post("/", middleware.JWTMiddleware, enrollmentValidator.CreateEnrollment(), ctrl.CreateEnrollment)
	enrollmentGroup.Patch("/:id", middleware.JWTMiddleware, enrollmentValidator.EnrollmentID(), enrollmentValidator.UpdateEnrollment(), ctrl.UpdateEnrollment)

	// Certificate issuing is an operator action
	enrollmentGroup.Post("/:id/certificate", middleware.JWTMiddleware, middleware.AdminOnly, enrollmentValidator.EnrollmentID(), ctrl.IssueCertificate)
}
