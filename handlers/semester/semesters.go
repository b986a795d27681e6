package semester

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// SemesterHandler handles semester-related requests
type SemesterHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSemesterHandler creates a new semester handler
func NewSemesterHandler(db *gorm.DB) *SemesterHandler {
	return &SemesterHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateSemesterRequest represents the request body for creating a semester
type CreateSemesterRequest struct {
	UserID uint   `json:"user_id" validate:"required,min=1"`
	Year   int    `json:"year" validate:"required,gte=2000,lte=2099"`
	Period string `json:"period" validate:"required,min=1,max=40"`
}

// ListSemesters handles GET /api/semesters/user/:userId
func (h *SemesterHandler) ListSemesters(c *fiber.Ctx) error {
	userID, err := handlers.ParseID(c, "userId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Semester](c, h.db, "No semesters found for this user", "user_id = ?", userID)
}

// GetSemester handles GET /api/semesters/:id
func (h *SemesterHandler) GetSemester(c *fiber.Ctx) error {
	return handlers.GetByID[model.Semester](c, h.db, "id", "Semester not found")
}

// CreateSemester handles POST /api/semesters
func (h *SemesterHandler) CreateSemester(c *fiber.Ctx) error {
	var req CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := handlers.ParentExists[model.User](c, h.db, req.UserID, "User not found"); err != nil {
		return handlers.Done(err)
	}

	semester := model.Semester{
		UserID: req.UserID,
		Year:   req.Year,
		Period: req.Period,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&semester).Error; err != nil {
		return err
	}

	return response.Created(c, "Semester created successfully", semester)
}

// DeleteSemester handles DELETE /api/semesters/:id; subjects and their grades go with it
func (h *SemesterHandler) DeleteSemester(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.Semester](c, h.db, "id", "Semester not found")
}
