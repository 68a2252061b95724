package main

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/meCodeKo/siverek-depo/config"
	"github.com/meCodeKo/siverek-depo/middleware"
	"github.com/meCodeKo/siverek-depo/repository"
	"github.com/meCodeKo/siverek-depo/routes"
)

func newLogger(appEnv string) *zap.Logger {
	if appEnv == "production" {
		log, _ := zap.NewProduction()
		return log
	}
	log, _ := zap.NewDevelopment()
	return log
}

func main() {
	// .env is optional so the binary also runs from plain environment vars.
	_ = godotenv.Load()

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	log := newLogger(appEnv)
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Warn("JWT_SECRET not set, using development default")
	}

	config.ConnectDB()

	if err := repository.InitializeCounters(); err != nil {
		log.Fatal("could not initialize id counters", zap.Error(err))
	}
	if err := repository.EnsureItemIndexes(); err != nil {
		log.Warn("could not create item indexes", zap.Error(err))
	}
	if err := repository.EnsureTransactionIndexes(); err != nil {
		log.Warn("could not create transaction indexes", zap.Error(err))
	}
	if err := repository.EnsureCategoryIndexes(); err != nil {
		log.Warn("could not create category indexes", zap.Error(err))
	}
	if err := repository.EnsureLocationIndexes(); err != nil {
		log.Warn("could not create location indexes", zap.Error(err))
	}
	if err := repository.EnsureUserIndexes(); err != nil {
		log.Warn("could not create user indexes", zap.Error(err))
	}

	if err := repository.SeedDefaults(log); err != nil {
		log.Fatal("could not seed default data", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName: "siverek-depo",
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.CorsMiddleware())

	// Global auth. Login must stay reachable anonymously, and the Excel
	// export is opened via window.open so it may carry the token as a query
	// parameter instead of a header.
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/health" {
			return c.Next()
		}
		if path == "/api/auth" && c.Method() == fiber.MethodPost {
			return middleware.JWTOptional(c)
		}
		if strings.HasPrefix(path, "/api/reports/export/") {
			return middleware.JWTMiddlewareForExport(c)
		}
		return middleware.JWTMiddleware(c)
	})

	routes.SetupRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Info("server listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
