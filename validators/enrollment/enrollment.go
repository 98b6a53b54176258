package enrollmentValidator

import (
	"strconv"
	"strings"

	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateEnrollmentRequest struct {
	CourseID  uint `json:"course_id" validate:"required,gt=0"`
	StudentID uint `json:"student_id" validate:"required,gt=0"`
}

// UpdateEnrollmentRequest carries the PATCH body. All fields are
// pointers so the controller can tell "absent" from a zero value.
type UpdateEnrollmentRequest struct {
	Status               *string  `json:"status" validate:"omitempty,oneof=enrolled in_progress completed dropped"`
	Progress             *float64 `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Grade                *float64 `json:"grade" validate:"omitempty,gte=0,lte=10"`
	CertificateRequested *bool    `json:"certificate_requested"`
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				case "StudentID":
					errors["student_id"] = "Student ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status == nil && reqData.Progress == nil && reqData.Grade == nil && reqData.CertificateRequested == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Status":
					errors["status"] = "Status must be one of enrolled, in_progress, completed, dropped!"
				case "Progress":
					errors["progress"] = "Progress must be between 0 and 100!"
				case "Grade":
					errors["grade"] = "Grade must be between 0 and 10!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :id path parameter.
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}
		c.Locals("enrollmentID", uint(id))
		return c.Next()
	}
}
