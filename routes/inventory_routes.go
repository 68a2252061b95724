package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/controllers"
)

// InventoryRoutes wires the action-dispatch inventory endpoint. Permission
// checks live in the controller because the required permission depends on
// the action in the request body.
func InventoryRoutes(app *fiber.App) {
	inv := app.Group("/api/inventory")

	inv.Get("/", controllers.InventoryGet)
	inv.Post("/", controllers.InventoryPost)
	inv.Put("/", controllers.InventoryPut)
	inv.Delete("/", controllers.InventoryDelete)
}
