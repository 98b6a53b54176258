package partnerRoutes

import (
	documentController "aeropartner/controllers/document"
	partnerController "aeropartner/controllers/partner"
	"aeropartner/middleware"
	documentValidator "aeropartner/validators/document"
	partnerValidator "aeropartner/validators/partner"

	"github.com/gofiber/fiber/v2"
)

// SetupPartnerRoutes wires the partner account and document endpoints.
func SetupPartnerRoutes(app *fiber.App, ctrl *partnerController.PartnerController, docs *documentController.DocumentController) {
	partnerGroup := app.Group("/api/partner")

	partnerGroup.Get("/", middleware.JWTMiddleware, ctrl.GetPartner)
	partnerGroup.Post("/", middleware.JWTMiddleware, partnerValidator.CreatePartner(), ctrl.CreatePartner)
	partnerGroup.Get("/stats", middleware.JWTMiddleware, ctrl.GetPartnerStats)

	// Partner document uploads and operator review
	partnerGroup.Get("/documents", middleware.JWTMiddleware, docs.GetPartnerDocuments)
	partnerGroup.Post("/documents", middleware.JWTMiddleware, documentValidator.UploadDocument(), docs.UploadDocument)
	partnerGroup.Patch("/documents/:id", middleware.JWTMiddleware, middleware.AdminOnly, documentValidator.DocumentID(), documentValidator.ReviewDocument(), docs.ReviewDocument)
}
