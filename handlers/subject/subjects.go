package subject

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// SubjectHandler handles subject-related requests
type SubjectHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(db *gorm.DB) *SubjectHandler {
	return &SubjectHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateSubjectRequest represents the request body for creating a subject
type CreateSubjectRequest struct {
	SemesterID uint   `json:"semester_id" validate:"required,min=1"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Code       string `json:"code" validate:"required,min=2,max=20"`
	Credits    int    `json:"credits" validate:"required,min=1,max=10"`
}

// ListSubjects handles GET /api/subjects/semester/:semesterId
func (h *SubjectHandler) ListSubjects(c *fiber.Ctx) error {
	semesterID, err := handlers.ParseID(c, "semesterId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Subject](c, h.db, "No subjects found for this semester", "semester_id = ?", semesterID)
}

// GetSubject handles GET /api/subjects/:id
func (h *SubjectHandler) GetSubject(c *fiber.Ctx) error {
	return handlers.GetByID[model.Subject](c, h.db, "id", "Subject not found")
}

// CreateSubject handles POST /api/subjects
func (h *SubjectHandler) CreateSubject(c *fiber.Ctx) error {
	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := handlers.ParentExists[model.Semester](c, h.db, req.SemesterID, "Semester not found"); err != nil {
		return handlers.Done(err)
	}

	subject := model.Subject{
		SemesterID: req.SemesterID,
		Name:       req.Name,
		Code:       req.Code,
		Credits:    req.Credits,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		return err
	}

	return response.Created(c, "Subject created successfully", subject)
}

// DeleteSubject handles DELETE /api/subjects/:id. Grades, quizzes, glossary terms and concept
// maps are deleted with the subject; notes and documents stay with a null subject_id.
func (h *SubjectHandler) DeleteSubject(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.Subject](c, h.db, "id", "Subject not found")
}
