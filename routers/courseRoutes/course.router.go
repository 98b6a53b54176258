package courseRoutes

import (
	courseController "aeropartner/controllers/course"
	"aeropartner/middleware"
	courseValidator "aeropartner/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the shared catalog endpoints.
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.CourseController) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", middleware.JWTMiddleware, ctrl.GetAllCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.CourseID(), ctrl.GetCourseDetails)
	courseGroup.Get("/:id/enrollments", middleware.JWTMiddleware, courseValidator.CourseID(), ctrl.GetCourseEnrollments)
	courseGroup.Get("/:id/documents", middleware.JWTMiddleware, courseValidator.CourseID(), ctrl.GetCourseDocuments)
}
