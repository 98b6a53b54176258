package courseValidator

import (
	"strconv"
	"strings"

	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=160"`
	Description  string   `json:"description" validate:"required"`
	Duration     int64    `json:"duration" validate:"required,gt=0"` // hours
	Instructors  []string `json:"instructors" validate:"omitempty,dive,min=2"`
	Requirements []string `json:"requirements"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
	Level        string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Rating       float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsActive     *bool    `json:"is_active"`
}

// CreateCourse validates the admin catalog-create body.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Course name must be between 2 and 160 characters!"
				case "Description":
					errors["description"] = "Description is required!"
				case "Duration":
					errors["duration"] = "Duration must be a positive number of hours!"
				case "Level":
					errors["level"] = "Level must be one of beginner, intermediate, advanced!"
				case "Rating":
					errors["rating"] = "Rating must be between 0 and 5!"
				case "ImageURL":
					errors["image_url"] = "Image URL must be a valid URL!"
				default:
					errors[strings.ToLower(fe.Field())] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}
