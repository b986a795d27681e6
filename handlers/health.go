package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/database"
	"github.com/studytrack/studytrack-api/utils/response"
)

// HandleCheckHealth pings the database and reports the service status
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := store.HealthCheck(ctx); err != nil {
		return response.ServiceUnavailable(c, "Database unreachable")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
