package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/response"
)

// RequireAdmin ensures the authenticated user has the admin role. It must run after Required.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok {
			return response.Unauthorized(c, "Authentication required")
		}

		if user.Role != model.RoleAdmin {
			return response.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

// RequireSelfOrAdmin lets a request through when the path parameter names the
// authenticated user, or the user is an admin. It must run after Required.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok {
			return response.Unauthorized(c, "Authentication required")
		}

		if user.Role == model.RoleAdmin {
			return c.Next()
		}

		id, err := strconv.ParseUint(c.Params(param), 10, 64)
		if err != nil || uint(id) != user.ID {
			return response.Forbidden(c, "You can only manage your own account")
		}

		return c.Next()
	}
}
