package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Every response carries the {success, data?, message?, error?, timestamp}
// envelope the web client expects.

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "timestamp": stamp()})
}

func OKMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data, "timestamp": stamp()})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "message": message, "data": data, "timestamp": stamp()})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).
		JSON(fiber.Map{"success": false, "error": message, "timestamp": stamp()})
}
