package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/model"
	authutil "github.com/studytrack/studytrack-api/utils/auth"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
)

// invalidCredentials is the single message for unknown emails and wrong passwords
const invalidCredentials = "Invalid email or password"

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expires_in"` // in seconds
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	var user model.User
	if err := h.db.WithContext(c.UserContext()).Where("email = ?", req.Email).Limit(1).Find(&user).Error; err != nil {
		return err
	}

	// Unknown email and wrong password are indistinguishable to the caller
	if user.ID == 0 || authutil.VerifyPassword(user.PasswordHash, req.Password) != nil {
		h.bruteForceProtection.RecordFailedAttempt(c)
		return response.Unauthorized(c, invalidCredentials)
	}

	h.bruteForceProtection.RecordSuccessfulAttempt(c)

	token, _, _, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role, user.TokenVersion)
	if err != nil {
		return err
	}

	return response.Success(c, LoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int(h.jwtManager.Expiry().Seconds()),
	})
}
