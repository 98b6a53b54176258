package studentRoutes

import (
	studentController "aeropartner/controllers/student"
	"aeropartner/middleware"
	studentValidator "aeropartner/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes wires the partner-scoped roster endpoints.
func SetupStudentRoutes(app *fiber.App, ctrl *studentController.StudentController) {
	studentGroup := app.Group("/api/students")

	studentGroup.Get("/", middleware.JWTMiddleware, ctrl.GetStudents)
	studentGroup.Post("/", middleware.JWTMiddleware, studentValidator.CreateStudent(), ctrl.CreateStudent)
	studentGroup.Put("/:id", middleware.JWTMiddleware, studentValidator.StudentID(), studentValidator.UpdateStudent(), ctrl.UpdateStudent)
}
