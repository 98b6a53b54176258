package documentController

import (
	"errors"
	"time"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/storage"
	documentValidator "aeropartner/validators/document"

	"github.com/gofiber/fiber/v2"
)

type DocumentController struct {
	Storage *storage.Storage
}

func New(st *storage.Storage) *DocumentController {
	return &DocumentController{Storage: st}
}

// resolvePartner maps the authenticated subject to its partner record.
func (ctrl *DocumentController) resolvePartner(c *fiber.Ctx) (*models.Partner, error) {
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

// GetPartnerDocuments returns the caller's submitted files.
func (ctrl *DocumentController) GetPartnerDocuments(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	docs, err := ctrl.Storage.GetPartnerDocuments(partner.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents fetched successfully!", docs)
}

// UploadDocument records a partner file against one of the caller's
// enrollments. Enrollments of other partners read as missing.
func (ctrl *DocumentController) UploadDocument(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedDocument").(*documentValidator.UploadDocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment, err := ctrl.Storage.GetEnrollment(reqData.EnrollmentID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && enrollment.PartnerID != partner.ID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	doc := models.PartnerDocument{
		PartnerID:    partner.ID,
		EnrollmentID: enrollment.ID,
		DocumentName: reqData.DocumentName,
		FileURL:      reqData.FileURL,
		UploadDate:   time.Now(),
		Status:       models.DocumentPending,
	}

	if err := ctrl.Storage.CreatePartnerDocument(&doc); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully!", doc)
}

// ReviewDocument moves a document out of pending. Admin only.
func (ctrl *DocumentController) ReviewDocument(c *fiber.Ctx) error {
	documentID := c.Locals("documentID").(uint)

	reqData, ok := c.Locals("validatedDocumentReview").(*documentValidator.ReviewDocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if _, err := ctrl.Storage.GetPartnerDocument(documentID); errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	updated, err := ctrl.Storage.UpdatePartnerDocument(documentID, map[string]interface{}{
		"status": reqData.Status,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document reviewed successfully!", updated)
}
