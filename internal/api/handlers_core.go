package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return successResponse(c, fiber.StatusOK, "", fiber.Map{"status": "ok"})
}
