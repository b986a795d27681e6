package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/utils/middleware"
	"github.com/studytrack/studytrack-api/utils/response"
)

// Me handles GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	return response.Success(c, user)
}

// Logout handles POST /api/users/logout by blacklisting the presented token until it expires
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	expiresAt := time.Now().Add(h.jwtManager.Expiry())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := h.blacklistService.RevokeToken(c.UserContext(), claims.ID, claims.UserID, expiresAt, "logout"); err != nil {
		return err
	}

	return response.SuccessWithMessage(c, "Successfully logged out", nil)
}

// LogoutAll handles POST /api/users/logout-all by invalidating every token issued to the user
func (h *UserHandler) LogoutAll(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	if err := h.blacklistService.RevokeAllUserTokens(c.UserContext(), user.ID); err != nil {
		return err
	}

	return response.SuccessWithMessage(c, "All sessions revoked", nil)
}
