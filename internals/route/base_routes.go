// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var bootedAt = time.Now()

// registerBaseRoutes adds the deep health check: a real DB round trip
// plus process uptime. The plain /health in main stays cheap for load
// balancer probes.
func registerBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil {
			dbStatus = "down"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus != "up" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"database": dbStatus,
			"uptime":   time.Since(bootedAt).Round(time.Second).String(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})
}
