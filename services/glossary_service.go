package services

import (
	"context"
	"fmt"

	"github.com/studytrack/studytrack-api/model"
	"gorm.io/gorm"
)

// GlossaryService handles batch writes of glossary terms
type GlossaryService struct {
	db *gorm.DB
}

// NewGlossaryService creates a new glossary service
func NewGlossaryService(db *gorm.DB) *GlossaryService {
	return &GlossaryService{db: db}
}

// GeneratedTerm is a machine-authored term. Example and Topic are folded into the stored definition.
type GeneratedTerm struct {
	Name       string
	Definition string
	Example    string
	Topic      string
}

// FoldDefinition renders the stored definition of a generated term
func FoldDefinition(t GeneratedTerm) string {
	return fmt.Sprintf("%s\n\n**Example:** %s\n**Topic:** %s", t.Definition, t.Example, t.Topic)
}

// AddGenerated appends generated terms to a subject in one transaction and returns how many were stored
func (s *GlossaryService) AddGenerated(ctx context.Context, subjectID uint, terms []GeneratedTerm) (int, error) {
	var stored int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Subject{}, subjectID); err != nil {
			return err
		}
		n, err := insertGenerated(tx, subjectID, terms)
		stored = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return stored, nil
}

// ReplaceGenerated drops every term of the subject and stores the new batch atomically
func (s *GlossaryService) ReplaceGenerated(ctx context.Context, subjectID uint, terms []GeneratedTerm) (int, error) {
	var stored int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Subject{}, subjectID); err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).Delete(&model.GlossaryTerm{}).Error; err != nil {
			return fmt.Errorf("failed to clear glossary of subject %d: %w", subjectID, err)
		}
		n, err := insertGenerated(tx, subjectID, terms)
		stored = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return stored, nil
}

// DeleteBySubject removes every term of a subject. It returns ErrNotFound when there was nothing to delete.
func (s *GlossaryService) DeleteBySubject(ctx context.Context, subjectID uint) (int64, error) {
	result := s.db.WithContext(ctx).Where("subject_id = ?", subjectID).Delete(&model.GlossaryTerm{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete glossary of subject %d: %w", subjectID, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return result.RowsAffected, nil
}

func insertGenerated(tx *gorm.DB, subjectID uint, terms []GeneratedTerm) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	records := make([]model.GlossaryTerm, 0, len(terms))
	for _, t := range terms {
		records = append(records, model.GlossaryTerm{
			SubjectID:  subjectID,
			Term:       t.Name,
			Definition: FoldDefinition(t),
			Source:     model.TermSourceAI,
		})
	}

	if err := tx.Create(&records).Error; err != nil {
		return 0, fmt.Errorf("failed to store glossary terms: %w", err)
	}
	return len(records), nil
}
