package studentValidator

import (
	"strconv"
	"strings"

	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateStudentRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Cpf     string `json:"cpf" validate:"omitempty,max=32"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type UpdateStudentRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	Cpf     *string `json:"cpf" validate:"omitempty,max=32"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStudentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Student name must be between 2 and 120 characters!"
				case "Email":
					errors["email"] = "Invalid email!"
				case "Phone":
					errors["phone"] = "Phone number is too long!"
				case "Cpf":
					errors["cpf"] = "Taxpayer id is too long!"
				case "Address":
					errors["address"] = "Address is too long!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStudentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Student name must be between 2 and 120 characters!"
				case "Email":
					errors["email"] = "Invalid email!"
				default:
					errors[strings.ToLower(fe.Field())] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

// StudentID validates the :id path parameter.
func StudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}
		c.Locals("studentID", uint(id))
		return c.Next()
	}
}
