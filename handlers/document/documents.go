package document

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// DocumentHandler handles document-related requests
type DocumentHandler struct {
	db              *gorm.DB
	validator       *validation.Validator
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(db *gorm.DB, documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		db:              db,
		validator:       validation.NewValidator(),
		documentService: documentService,
	}
}

// CreateDocumentRequest represents the request body for registering an uploaded document
type CreateDocumentRequest struct {
	UserID        uint    `json:"user_id" validate:"required,min=1"`
	SubjectID     *uint   `json:"subject_id" validate:"omitempty,min=1"`
	Title         string  `json:"title" validate:"required,min=2,max=100"`
	Type          string  `json:"type" validate:"required,oneof=image pdf voice text"`
	FileURL       string  `json:"file_url" validate:"required,url"`
	ExtractedText *string `json:"extracted_text"`
}

// ListDocuments handles GET /api/documents/user/:userId
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, err := handlers.ParseID(c, "userId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Document](c, h.db, "No documents found for this user", "user_id = ?", userID)
}

// ListSubjectDocuments handles GET /api/documents/user/:userId/subject/:subjectId
func (h *DocumentHandler) ListSubjectDocuments(c *fiber.Ctx) error {
	userID, err := handlers.ParseID(c, "userId")
	if err != nil {
		return handlers.Done(err)
	}
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Document](c, h.db, "No documents found for this subject",
		"user_id = ? AND subject_id = ?", userID, subjectID)
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	return handlers.GetByID[model.Document](c, h.db, "id", "Document not found")
}

// CreateDocument handles POST /api/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req CreateDocumentRequest
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

	document := model.Document{
		UserID:        req.UserID,
		SubjectID:     req.SubjectID,
		Title:         req.Title,
		Type:          model.DocumentType(req.Type),
		FileURL:       req.FileURL,
		ExtractedText: req.ExtractedText,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&document).Error; err != nil {
		return err
	}

	return response.Created(c, "Document created successfully", document)
}

// GetDownloadURL handles GET /api/documents/:id/download?expiration=<minutes>
func (h *DocumentHandler) GetDownloadURL(c *fiber.Ctx) error {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		return handlers.Done(err)
	}

	minutes := c.QueryInt("expiration", 0)
	if minutes < 0 {
		return response.BadRequest(c, "expiration must be a positive number of minutes")
	}
	// clamp before converting so huge values cannot overflow time.Duration
	if limit := int(services.MaxDownloadExpiration / time.Minute); minutes > limit {
		minutes = limit
	}

	link, err := h.documentService.DownloadURL(c.UserContext(), id, time.Duration(minutes)*time.Minute)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return err
	}

	return response.Success(c, link)
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		return handlers.Done(err)
	}

	if err := h.documentService.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return err
	}

	return response.SuccessWithMessage(c, "Deleted successfully", fiber.Map{"deleted": 1})
}
