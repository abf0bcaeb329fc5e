package handlers

import "github.com/gofiber/fiber/v2"

// ok writes the success envelope shared by every endpoint.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}
