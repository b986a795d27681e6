package glossary

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

// GlossaryHandler handles glossary-related requests
type GlossaryHandler struct {
	db              *gorm.DB
	validator       *validation.Validator
	glossaryService *services.GlossaryService
}

// NewGlossaryHandler creates a new glossary handler
func NewGlossaryHandler(db *gorm.DB, glossaryService *services.GlossaryService) *GlossaryHandler {
	return &GlossaryHandler{
		db:              db,
		validator:       validation.NewValidator(),
		glossaryService: glossaryService,
	}
}

// GeneratedTermRequest is one machine-authored term of a batch
type GeneratedTermRequest struct {
	Name       string `json:"name" validate:"required"`
	Definition string `json:"definition" validate:"required"`
	Example    string `json:"example"`
	Topic      string `json:"topic"`
}

// BatchRequest represents a batch of generated terms for a subject
type BatchRequest struct {
	Class     string                 `json:"class"`
	SubjectID uint                   `json:"subject_id" validate:"required,min=1"`
	Terms     []GeneratedTermRequest `json:"terms" validate:"required,dive"`
}

// ReplaceRequest represents the new set of generated terms of a subject
type ReplaceRequest struct {
	Class string                 `json:"class"`
	Terms []GeneratedTermRequest `json:"terms" validate:"dive"`
}

// ManualTermRequest represents a single user-authored term
type ManualTermRequest struct {
	SubjectID  uint   `json:"subject_id" validate:"required,min=1"`
	Term       string `json:"term" validate:"required,min=1,max=100"`
	Definition string `json:"definition" validate:"required,min=1"`
}

// ListTerms handles GET /api/glossary/subject/:subjectId
func (h *GlossaryHandler) ListTerms(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.GlossaryTerm](c, h.db, "No glossary terms found for this subject", "subject_id = ?", subjectID)
}

// CreateBatch handles POST /api/glossary
func (h *GlossaryHandler) CreateBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	total, err := h.glossaryService.AddGenerated(c.UserContext(), req.SubjectID, toGenerated(req.Terms))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Subject not found")
		}
		return err
	}

	return response.Created(c, "Glossary stored successfully", fiber.Map{"total": total})
}

// ReplaceSubjectTerms handles PUT /api/glossary/subject/:subjectId
func (h *GlossaryHandler) ReplaceSubjectTerms(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}

	var req ReplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	total, err := h.glossaryService.ReplaceGenerated(c.UserContext(), subjectID, toGenerated(req.Terms))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Subject not found")
		}
		return err
	}

	return response.SuccessWithMessage(c, "Glossary replaced successfully", fiber.Map{"total": total})
}

// CreateManual handles POST /api/glossary/manual
func (h *GlossaryHandler) CreateManual(c *fiber.Ctx) error {
	var req ManualTermRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := handlers.ParentExists[model.Subject](c, h.db, req.SubjectID, "Subject not found"); err != nil {
		return handlers.Done(err)
	}

	term := model.GlossaryTerm{
		SubjectID:  req.SubjectID,
		Term:       req.Term,
		Definition: req.Definition,
		Source:     model.TermSourceUser,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&term).Error; err != nil {
		return err
	}

	return response.Created(c, "Glossary term created successfully", term)
}

// DeleteSubjectTerms handles DELETE /api/glossary/subject/:subjectId
func (h *GlossaryHandler) DeleteSubjectTerms(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}

	deleted, err := h.glossaryService.DeleteBySubject(c.UserContext(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "No glossary terms found for this subject")
		}
		return err
	}

	return response.SuccessWithMessage(c, "Deleted successfully", fiber.Map{"deleted": deleted})
}

// DeleteTerm handles DELETE /api/glossary/:id
func (h *GlossaryHandler) DeleteTerm(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.GlossaryTerm](c, h.db, "id", "Glossary term not found")
}

func toGenerated(terms []GeneratedTermRequest) []services.GeneratedTerm {
	out := make([]services.GeneratedTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, services.GeneratedTerm{
			Name:       t.Name,
			Definition: t.Definition,
			Example:    t.Example,
			Topic:      t.Topic,
		})
	}
	return out
}
