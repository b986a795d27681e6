package grade

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// GradeHandler handles grade-related requests
type GradeHandler struct {
	db           *gorm.DB
	validator    *validation.Validator
	gradeService *services.GradeService
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(db *gorm.DB, gradeService *services.GradeService) *GradeHandler {
	return &GradeHandler{
		db:           db,
		validator:    validation.NewValidator(),
		gradeService: gradeService,
	}
}

// CreateGradeRequest represents the request body for creating a grade.
// Score and MaxScore may be omitted for evaluations that are not graded yet.
type CreateGradeRequest struct {
	SubjectID uint     `json:"subject_id" validate:"required,min=1"`
	Name      string   `json:"name" validate:"required,min=2,max=100"`
	Weight    *float64 `json:"weight" validate:"required,gte=0,lte=100"`
	Score     *float64 `json:"score" validate:"omitempty,gte=0,lte=5"`
	MaxScore  *float64 `json:"max_score" validate:"omitempty,gte=0,lte=5"`
}

// ListGrades handles GET /api/grades/subject/:subjectId
func (h *GradeHandler) ListGrades(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Grade](c, h.db, "No grades found for this subject", "subject_id = ?", subjectID)
}

// SubjectSummary handles GET /api/grades/subject/:subjectId/summary
func (h *GradeHandler) SubjectSummary(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}

	summary, err := h.gradeService.SubjectSummary(c.UserContext(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Subject not found")
		}
		return err
	}

	return response.Success(c, summary)
}

// SemesterSummary handles GET /api/grades/semester/:semesterId
func (h *GradeHandler) SemesterSummary(c *fiber.Ctx) error {
	semesterID, err := handlers.ParseID(c, "semesterId")
	if err != nil {
		return handlers.Done(err)
	}

	summaries, err := h.gradeService.SemesterSummary(c.UserContext(), semesterID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "No subjects found for this semester")
		}
		return err
	}

	return response.Success(c, summaries)
}

// GetGrade handles GET /api/grades/:id
func (h *GradeHandler) GetGrade(c *fiber.Ctx) error {
	return handlers.GetByID[model.Grade](c, h.db, "id", "Grade not found")
}

// CreateGrade handles POST /api/grades
func (h *GradeHandler) CreateGrade(c *fiber.Ctx) error {
	var req CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := handlers.ParentExists[model.Subject](c, h.db, req.SubjectID, "Subject not found"); err != nil {
		return handlers.Done(err)
	}

	grade := model.Grade{
		SubjectID: req.SubjectID,
		Name:      req.Name,
		Weight:    *req.Weight,
		Score:     req.Score,
		MaxScore:  req.MaxScore,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&grade).Error; err != nil {
		return err
	}

	return response.Created(c, "Grade created successfully", grade)
}

// DeleteGrade handles DELETE /api/grades/:id
func (h *GradeHandler) DeleteGrade(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.Grade](c, h.db, "id", "Grade not found")
}
