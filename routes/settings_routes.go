package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/controllers"
	"github.com/meCodeKo/siverek-depo/middleware"
)

func SettingsRoutes(app *fiber.App) {
	settings := app.Group("/api/settings")

	settings.Get("/", middleware.RequirePermission("settings", "read"), controllers.GetSettings)
	settings.Put("/", middleware.RequirePermission("settings", "update"), controllers.UpdateSettings)
}
