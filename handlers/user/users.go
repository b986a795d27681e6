package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	authutil "github.com/studytrack/studytrack-api/utils/auth"
	"github.com/studytrack/studytrack-api/utils/middleware"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// UserHandler handles user accounts and sessions
type UserHandler struct {
	db                   *gorm.DB
	validator            *validation.Validator
	jwtManager           *authutil.JWTManager
	blacklistService     *authutil.BlacklistService
	bruteForceProtection *middleware.BruteForceProtection
}

// NewUserHandler creates a new user handler. bruteForceProtection may be nil.
func NewUserHandler(db *gorm.DB, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *UserHandler {
	return &UserHandler{
		db:                   db,
		validator:            validation.NewValidator(),
		jwtManager:           jwtManager,
		blacklistService:     authutil.NewBlacklistService(db),
		bruteForceProtection: bruteForceProtection,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := h.db.WithContext(c.UserContext()).Order("id ASC").Find(&users).Error; err != nil {
		return err
	}
	return response.Success(c, users)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	return handlers.GetByID[model.User](c, h.db, "id", "User not found")
}

// DeleteUser handles DELETE /api/users/:id. Semesters, subjects and everything below them,
// notes, documents and revoked tokens go with the user.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.User](c, h.db, "id", "User not found")
}
