package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	InventoryRoutes(app)
	AuthRoutes(app)
	ReportRoutes(app)
	SettingsRoutes(app)
}
