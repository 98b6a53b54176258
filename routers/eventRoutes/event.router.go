package eventRoutes

import (
	eventController "aeropartner/controllers/event"
	"aeropartner/middleware"
	eventValidator "aeropartner/validators/event"

	"github.com/gofiber/fiber/v2"
)

// SetupEventRoutes wires the shared event endpoints.
func SetupEventRoutes(app *fiber.App, ctrl *eventController.EventController) {
	eventGroup := app.Group("/api/events")

	eventGroup.Get("/", middleware.JWTMiddleware, ctrl.GetAllEvents)
	eventGroup.Get("/upcoming", middleware.JWTMiddleware, ctrl.GetUpcomingEvents)
	eventGroup.Get("/registrations", middleware.JWTMiddleware, ctrl.GetMyRegistrations)
	eventGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, eventValidator.CreateEvent(), ctrl.CreateEvent)
	eventGroup.Post("/:id/register", middleware.JWTMiddleware, eventValidator.EventID(), ctrl.RegisterForEvent)
}
