// file: internals/route/base_routes.go
package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "portfolio_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Portfolio backend connected successfully 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}

const themeCookieName = "site_theme"

// ThemeRoutes: preferensi tema disimpan di cookie (default dark),
// jadi konsisten antar tab tanpa localStorage.
func ThemeRoutes(r fiber.Router) {
	r.Get("/theme", func(c *fiber.Ctx) error {
		theme := c.Cookies(themeCookieName, "dark")
		if theme != "light" {
			theme = "dark"
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"theme": theme}})
	})

	r.Post("/theme/toggle", func(c *fiber.Ctx) error {
		theme := "dark"
		if c.Cookies(themeCookieName, "dark") == "dark" {
			theme = "light"
		}
		c.Cookie(&fiber.Cookie{
			Name:     themeCookieName,
			Value:    theme,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: "Lax",
		})
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"theme": theme}})
	})
}
