package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

// storeError maps store failures to explicit statuses so no failure path
// leaves the caller without a response.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}
