package utils

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/database"
)

// MakeHTTPHandleFunc binds a storage-aware handler to a Fiber route
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return handler(c, store)
	}
}
