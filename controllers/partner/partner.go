package partnerController

import (
	"errors"
	"strings"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/stats"
	"aeropartner/storage"
	partnerValidator "aeropartner/validators/partner"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PartnerController struct {
	Storage *storage.Storage
}

func New(st *storage.Storage) *PartnerController {
	return &PartnerController{Storage: st}
}

// GetPartner returns the caller's partner record or 404 when the partner
// setup was never completed.
func (ctrl *PartnerController) GetPartner(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	partner, err := ctrl.Storage.GetPartnerByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner fetched successfully!", partner)
}

// CreatePartner performs the one-time partner setup for the caller. The
// partner id is never taken from the request; it is derived from the
// authenticated subject.
func (ctrl *PartnerController) CreatePartner(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := ctrl.Storage.GetUser(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if _, err := ctrl.Storage.GetPartnerByUserID(userID); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Partner already exists for this account!", nil)
	}

	reqData, ok := c.Locals("validatedPartner").(*partnerValidator.CreatePartnerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	utmTag := reqData.UtmTag
	if utmTag == "" {
		utmTag = generateUtmTag()
	}

	partner := models.Partner{
		UserID:         userID,
		Company:        reqData.Company,
		Classification: models.ClassificationBronze,
		UtmTag:         utmTag,
	}

	if err := ctrl.Storage.CreatePartner(&partner); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "UTM tag already in use!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner created successfully!", partner)
}

// GetPartnerStats returns the derived dashboard metrics computed from
// the partner's enrollment rows.
func (ctrl *PartnerController) GetPartnerStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	partner, err := ctrl.Storage.GetPartnerByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner!", nil)
	}

	enrollments, err := ctrl.Storage.GetPartnerEnrollments(partner.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	// Average grade is a nullable metric: the dashboard shows a
	// placeholder until the first grade lands, never a literal 0.
	var avgGrade *float64
	if grade, ok := stats.AverageGrade(enrollments); ok {
		avgGrade = &grade
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner stats fetched successfully!", fiber.Map{
		"classification":   partner.Classification,
		"tier_progress":    stats.TierProgress(partner.Classification),
		"next_tier":        stats.NextTier(partner.Classification),
		"total_score":      partner.TotalScore,
		"completion_rate":  stats.CompletionRate(enrollments),
		"average_progress": stats.AverageProgress(enrollments),
		"average_grade":    avgGrade,
		"enrollments":      len(enrollments),
	})
}

// generateUtmTag builds a tracking tag for partners that do not bring
// their own.
func generateUtmTag() string {
	return "PTR-" + strings.ToUpper(uuid.NewString()[:8])
}
