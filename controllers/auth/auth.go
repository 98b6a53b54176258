package authController

import (
	"errors"
	"strings"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/storage"
	"aeropartner/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Storage  *storage.Storage
	Identity *utils.IdentityClient
}

func New(st *storage.Storage, identity *utils.IdentityClient) *AuthController {
	return &AuthController{Storage: st, Identity: identity}
}

// GetCurrentUser returns the caller's mirrored account record. On first
// sight of a subject the profile is pulled from the identity provider
// and upserted.
func (ctrl *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.Storage.GetUser(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ctrl.syncFromProvider(c, userID)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// SyncUser refreshes the mirrored account from the identity provider.
// The client calls this right after login so profile edits made at the
// provider show up here.
func (ctrl *AuthController) SyncUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return ctrl.syncFromProvider(c, userID)
}

func (ctrl *AuthController) syncFromProvider(c *fiber.Ctx, userID string) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	info, err := ctrl.Identity.FetchUserInfo(token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile from identity provider!", nil)
	}
	if info.Sub != userID {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Token subject mismatch!", nil)
	}

	user := models.User{
		ID:              info.Sub,
		FirstName:       info.GivenName,
		LastName:        info.FamilyName,
		ProfileImageURL: info.Picture,
	}
	if info.Email != "" {
		user.Email = &info.Email
	}

	saved, err := ctrl.Storage.UpsertUser(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User synced successfully!", saved)
}
