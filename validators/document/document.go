package documentValidator

import (
	"strconv"
	"strings"

	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UploadDocumentRequest struct {
	EnrollmentID uint   `json:"enrollment_id" validate:"required,gt=0"`
	DocumentName string `json:"document_name" validate:"required,min=2,max=160"`
	FileURL      string `json:"file_url" validate:"required,url"`
}

type ReviewDocumentRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UploadDocumentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "EnrollmentID":
					errors["enrollment_id"] = "Enrollment ID is required!"
				case "DocumentName":
					errors["document_name"] = "Document name must be between 2 and 160 characters!"
				case "FileURL":
					errors["file_url"] = "File URL must be a valid URL!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocument", reqData)
		return c.Next()
	}
}

// ReviewDocument validates the operator approve/reject body.
func ReviewDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewDocumentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be approved or rejected!",
			})
		}

		c.Locals("validatedDocumentReview", reqData)
		return c.Next()
	}
}

// DocumentID validates the :id path parameter.
func DocumentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document ID!", nil)
		}
		c.Locals("documentID", uint(id))
		return c.Next()
	}
}
