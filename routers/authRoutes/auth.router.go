package authRoutes

import (
	authController "aeropartner/controllers/auth"
	"aeropartner/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires the identity endpoints.
func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	authGroup := app.Group("/api/auth")

	authGroup.Get("/user", middleware.JWTMiddleware, ctrl.GetCurrentUser)
	authGroup.Post("/sync", middleware.JWTMiddleware, ctrl.SyncUser)
}
