package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports process and storage status. storage names the active
// storage driver.
func HealthCheck(store Pinger, storage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, dbStatus := "ok", "healthy"
		code := fiber.StatusOK
		if err := store.Ping(c.Context()); err != nil {
			status, dbStatus = "degraded", "unhealthy"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"service":   "bonehealth-backend",
			"version":   "1.0.0",
			"storage":   storage,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
