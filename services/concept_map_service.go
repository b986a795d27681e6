package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studytrack/studytrack-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConceptMapService stores and replaces concept graphs
type ConceptMapService struct {
	db *gorm.DB
}

// NewConceptMapService creates a new concept map service
func NewConceptMapService(db *gorm.DB) *ConceptMapService {
	return &ConceptMapService{db: db}
}

// Create stores a graph for a subject
func (s *ConceptMapService) Create(ctx context.Context, subjectID uint, graph model.ConceptGraph) (*model.ConceptMap, error) {
	normalizeGraph(&graph)

	conceptMap := model.ConceptMap{
		SubjectID: subjectID,
		Data:      datatypes.NewJSONType(graph),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Subject{}, subjectID); err != nil {
			return err
		}
		if err := tx.Create(&conceptMap).Error; err != nil {
			return fmt.Errorf("failed to create concept map: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &conceptMap, nil
}

// Replace overwrites the graph of an existing concept map
func (s *ConceptMapService) Replace(ctx context.Context, id uint, graph model.ConceptGraph) (*model.ConceptMap, error) {
	normalizeGraph(&graph)

	var conceptMap model.ConceptMap
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&conceptMap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load concept map %d: %w", id, err)
		}

		conceptMap.Data = datatypes.NewJSONType(graph)
		if err := tx.Model(&conceptMap).Update("data", conceptMap.Data).Error; err != nil {
			return fmt.Errorf("failed to update concept map %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &conceptMap, nil
}

// normalizeGraph makes empty node and edge lists encode as [] rather than null
func normalizeGraph(g *model.ConceptGraph) {
	if g.Nodes == nil {
		g.Nodes = []model.ConceptNode{}
	}
	if g.Edges == nil {
		g.Edges = []model.ConceptEdge{}
	}
}
