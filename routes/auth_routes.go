package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/controllers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Get("/", controllers.AuthGet)
	auth.Post("/", controllers.AuthPost)
}
