// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"usermgmt/internal/users/adapters/http/health"
	"usermgmt/internal/users/adapters/http/middleware"
	"usermgmt/internal/users/adapters/http/users"
	"usermgmt/internal/users/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, registration api.RegistrationUseCase, pinger health.Pinger) {
	userHandler := users.NewHandler(registration)
	healthHandler := health.NewHandler(pinger)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Служебные маршруты.
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the user management API",
		})
	})
	app.Get("/health", healthHandler.Check)

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	userRoutes := apiV1.Group("/users")
	userRoutes.Post("/", userHandler.Register)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
