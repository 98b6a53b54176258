package middleware

import "github.com/gofiber/fiber/v2"

// AdminOnly gates catalog and review routes behind the admin role
// claimed in the token. Must run after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}
	return c.Next()
}
