package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ownerFromContext resolves the authenticated owner id stored by the auth
// middleware. Every service call takes the owner id explicitly; handlers are
// the only place that touches ambient request context.
func ownerFromContext(c *fiber.Ctx) (string, error) {
	ownerID, ok := c.Locals("user_id").(string)
	if !ok || ownerID == "" {
		return "", c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}
	return ownerID, nil
}
