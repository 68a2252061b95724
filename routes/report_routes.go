package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/controllers"
	"github.com/meCodeKo/siverek-depo/middleware"
)

func ReportRoutes(app *fiber.App) {
	reports := app.Group("/api/reports")

	reports.Get("/", middleware.RequirePermission("reports", "read"), controllers.GetReport)
	reports.Get("/statistics", middleware.RequirePermission("reports", "read"), controllers.GetStatistics)
	reports.Get("/export/excel", middleware.RequirePermission("reports", "export"), controllers.ExportExcel)
}
