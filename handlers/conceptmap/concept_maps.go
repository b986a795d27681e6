package conceptmap

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

// ConceptMapHandler handles concept map requests
type ConceptMapHandler struct {
	db                *gorm.DB
	validator         *validation.Validator
	conceptMapService *services.ConceptMapService
}

// NewConceptMapHandler creates a new concept map handler
func NewConceptMapHandler(db *gorm.DB, conceptMapService *services.ConceptMapService) *ConceptMapHandler {
	return &ConceptMapHandler{
		db:                db,
		validator:         validation.NewValidator(),
		conceptMapService: conceptMapService,
	}
}

// NodeRequest is a node of a submitted graph
type NodeRequest struct {
	ID          string  `json:"id" validate:"required"`
	Label       string  `json:"label" validate:"required"`
	Description *string `json:"description"`
	Level       *int    `json:"level" validate:"omitempty,gte=0,lte=12"`
}

// EdgeRequest is an edge of a submitted graph
type EdgeRequest struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Relation string `json:"relation"`
}

// GraphRequest represents a concept graph in a request body
type GraphRequest struct {
	Topic string        `json:"topic" validate:"required"`
	Nodes []NodeRequest `json:"nodes" validate:"dive"`
	Edges []EdgeRequest `json:"edges" validate:"dive"`
}

// CreateConceptMapRequest represents the request body for creating a concept map
type CreateConceptMapRequest struct {
	SubjectID uint `json:"subject_id" validate:"required,min=1"`
	GraphRequest
}

// ListConceptMaps handles GET /api/concept-maps/subject/:subjectId
func (h *ConceptMapHandler) ListConceptMaps(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.ConceptMap](c, h.db, "No concept maps found for this subject", "subject_id = ?", subjectID)
}

// GetConceptMap handles GET /api/concept-maps/:id
func (h *ConceptMapHandler) GetConceptMap(c *fiber.Ctx) error {
	return handlers.GetByID[model.ConceptMap](c, h.db, "id", "Concept map not found")
}

// CreateConceptMap handles POST /api/concept-maps
func (h *ConceptMapHandler) CreateConceptMap(c *fiber.Ctx) error {
	var req CreateConceptMapRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	conceptMap, err := h.conceptMapService.Create(c.UserContext(), req.SubjectID, req.toGraph())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Subject not found")
		}
		return err
	}

	return response.Created(c, "Concept map stored successfully", fiber.Map{
		"concept_map_id": conceptMap.ID,
		"topic":          req.Topic,
	})
}

// UpdateConceptMap handles PUT /api/concept-maps/:id by replacing the whole graph
func (h *ConceptMapHandler) UpdateConceptMap(c *fiber.Ctx) error {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		return handlers.Done(err)
	}

	var req GraphRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	conceptMap, err := h.conceptMapService.Replace(c.UserContext(), id, req.toGraph())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, "Concept map not found")
		}
		return err
	}

	return response.Success(c, conceptMap)
}

// DeleteConceptMap handles DELETE /api/concept-maps/:id
func (h *ConceptMapHandler) DeleteConceptMap(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.ConceptMap](c, h.db, "id", "Concept map not found")
}

func (g GraphRequest) toGraph() model.ConceptGraph {
	graph := model.ConceptGraph{
		Topic: g.Topic,
		Nodes: make([]model.ConceptNode, 0, len(g.Nodes)),
		Edges: make([]model.ConceptEdge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		graph.Nodes = append(graph.Nodes, model.ConceptNode{
			ID:          n.ID,
			Label:       n.Label,
			Description: n.Description,
			Level:       n.Level,
		})
	}
	for _, e := range g.Edges {
		graph.Edges = append(graph.Edges, model.ConceptEdge{From: e.From, To: e.To, Relation: e.Relation})
	}
	return graph
}
