package note

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// NoteHandler handles note-related requests
type NoteHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	UserID     uint   `json:"user_id" validate:"required,min=1"`
	SubjectID  *uint  `json:"subject_id" validate:"omitempty,min=1"`
	DocumentID *uint  `json:"document_id" validate:"omitempty,min=1"`
	Title      string `json:"title" validate:"required,min=2,max=100"`
	Content    string `json:"content" validate:"required,min=1"`
	Format     string `json:"format" validate:"required,oneof=markdown latex text"`
}

// ListNotes handles GET /api/notes/user/:userId
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	userID, err := handlers.ParseID(c, "userId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Note](c, h.db, "No notes found for this user", "user_id = ?", userID)
}

// ListSubjectNotes handles GET /api/notes/user/:userId/subject/:subjectId
func (h *NoteHandler) ListSubjectNotes(c *fiber.Ctx) error {
	userID, err := handlers.ParseID(c, "userId")
	if err != nil {
		return handlers.Done(err)
	}
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Note](c, h.db, "No notes found for this subject",
		"user_id = ? AND subject_id = ?", userID, subjectID)
}

// GetNote handles GET /api/notes/:id
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	return handlers.GetByID[model.Note](c, h.db, "id", "Note not found")
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := handlers.ParentExists[model.User](c, h.db, req.UserID, "User not found"); err != nil {
		return handlers.Done(err)
	}
	if req.SubjectID != nil {
		if err := handlers.ParentExists[model.Subject](c, h.db, *req.SubjectID, "Subject not found"); err != nil {
			return handlers.Done(err)
		}
	}
	if req.DocumentID != nil {
		if err := handlers.ParentExists[model.Document](c, h.db, *req.DocumentID, "Document not found"); err != nil {
			return handlers.Done(err)
		}
	}

	note := model.Note{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		DocumentID: req.DocumentID,
		Title:      req.Title,
		Content:    req.Content,
		Format:     model.NoteFormat(req.Format),
	}

	if err := h.db.WithContext(c.UserContext()).Create(&note).Error; err != nil {
		return err
	}

	return response.Created(c, "Note created successfully", note)
}

// DeleteNote handles DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.Note](c, h.db, "id", "Note not found")
}
