package eventValidator

import (
	"strconv"
	"strings"
	"time"

	"aeropartner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateEventRequest struct {
	Title           string    `json:"title" validate:"required,min=2,max=160"`
	Description     string    `json:"description"`
	EventDate       time.Time `json:"event_date" validate:"required"`
	Duration        int64     `json:"duration" validate:"required,gt=0"` // minutes
	Type            string    `json:"type" validate:"required,oneof=workshop webinar conference"`
	IsOnline        *bool     `json:"is_online"`
	MaxParticipants *int      `json:"max_participants" validate:"omitempty,gt=0"`
}

// CreateEvent validates the admin event-create body.
func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEventRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["title"] = "Event title must be between 2 and 160 characters!"
				case "EventDate":
					errors["event_date"] = "Event date is required!"
				case "Duration":
					errors["duration"] = "Duration must be a positive number of minutes!"
				case "Type":
					errors["type"] = "Type must be one of workshop, webinar, conference!"
				case "MaxParticipants":
					errors["max_participants"] = "Max participants must be greater than 0!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}

// EventID validates the :id path parameter.
func EventID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid event ID!", nil)
		}
		c.Locals("eventID", uint(id))
		return c.Next()
	}
}
