package middleware

import (
	"strings"

	"tokopos/auth"
	"tokopos/models"
	"tokopos/utils"

	"github.com/gofiber/fiber/v2"
)

func JWTMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	token := strings.TrimPrefix(header, "Bearer ")
	employeeID, err := utils.ParseJWTToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("employee_id", employeeID)
	return c.Next()
}

// RequireRoles gates a route on the active session's role.
func RequireRoles(authSvc *auth.Service, allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := authSvc.HasPermission(allowed...)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}
