package partnerValidator

import (
	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreatePartnerRequest struct {
	Company string `json:"company" validate:"required,min=2,max=120"`
	UtmTag  string `json:"utm_tag" validate:"omitempty,min=3,max=64"`
}

// CreatePartner validates the partner-setup body. The utm tag is
// optional; the controller generates one when absent.
func CreatePartner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePartnerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Company":
					errors["company"] = "Company name must be between 2 and 120 characters!"
				case "UtmTag":
					errors["utm_tag"] = "UTM tag must be between 3 and 64 characters!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPartner", reqData)
		return c.Next()
	}
}
