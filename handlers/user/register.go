package user

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/model"
	authutil "github.com/studytrack/studytrack-api/utils/auth"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// RegisterRequest represents a user registration request.
// Older clients send the plaintext password as password_hash; it is accepted when password is empty.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=40"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	LegacyPassword string `json:"password_hash" validate:"-"`
	School         string `json:"school" validate:"required,min=2,max=80"`
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Password == "" {
		req.Password = req.LegacyPassword
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.School = strings.TrimSpace(req.School)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	var existing int64
	if err := h.db.WithContext(c.UserContext()).Model(&model.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return response.Conflict(c, "Email already registered")
	}

	passwordHash, err := authutil.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         model.RoleStudent,
		School:       req.School,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration of the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Email already registered")
		}
		return err
	}

	return response.Created(c, "User registered successfully", user)
}
