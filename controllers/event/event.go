package eventController

import (
	"errors"
	"time"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/storage"
	eventValidator "aeropartner/validators/event"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EventController struct {
	Storage *storage.Storage
}

func New(st *storage.Storage) *EventController {
	return &EventController{Storage: st}
}

// resolvePartner maps the authenticated subject to its partner record.
func (ctrl *EventController) resolvePartner(c *fiber.Ctx) (*models.Partner, error) {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	partner, err := ctrl.Storage.GetPartnerByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner!", nil)
	}
	return partner, nil
}

func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	events, err := ctrl.Storage.GetAllEvents()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", events)
}

func (ctrl *EventController) GetUpcomingEvents(c *fiber.Ctx) error {
	events, err := ctrl.Storage.GetUpcomingEvents()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch upcoming events!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upcoming events fetched successfully!", events)
}

// RegisterForEvent signs the caller's partner up for an event. The
// registration row and the participant counter move in one transaction.
func (ctrl *EventController) RegisterForEvent(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	eventID := c.Locals("eventID").(uint)

	event, err := ctrl.Storage.GetEvent(eventID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch event!", nil)
	}
	if !event.IsActive {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	registered, err := ctrl.Storage.HasEventRegistration(partner.ID, event.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check registration!", nil)
	}
	if registered {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already registered for this event!", nil)
	}

	if event.MaxParticipants != nil && event.RegisteredParticipants >= *event.MaxParticipants {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Event is full!", nil)
	}

	registration := models.EventRegistration{
		PartnerID:        partner.ID,
		EventID:          event.ID,
		RegistrationDate: time.Now(),
	}

	err = ctrl.Storage.Transaction(func(tx *storage.Storage) error {
		if err := tx.RegisterForEvent(&registration); err != nil {
			return err
		}
		_, err := tx.UpdateEvent(event.ID, map[string]interface{}{
			"registered_participants": gorm.Expr("registered_participants + 1"),
		})
		return err
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registered for event successfully!", registration)
}

// GetMyRegistrations returns the caller's registrations joined with
// their events.
func (ctrl *EventController) GetMyRegistrations(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	regs, err := ctrl.Storage.GetPartnerEventRegistrations(partner.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", regs)
}

// CreateEvent schedules an event. Admin only.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEvent").(*eventValidator.CreateEventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	isOnline := true
	if reqData.IsOnline != nil {
		isOnline = *reqData.IsOnline
	}

	event := models.Event{
		Title:           reqData.Title,
		Description:     reqData.Description,
		EventDate:       reqData.EventDate,
		Duration:        reqData.Duration,
		Type:            reqData.Type,
		IsOnline:        isOnline,
		MaxParticipants: reqData.MaxParticipants,
		IsActive:        true,
	}

	if err := ctrl.Storage.CreateEvent(&event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event created successfully!", event)
}
