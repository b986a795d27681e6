package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studytrack/studytrack-api/model"
	"gorm.io/gorm"
)

// GradeService reads grades and aggregates them per subject
type GradeService struct {
	db *gorm.DB
}

// NewGradeService creates a new grade service
func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{db: db}
}

// SubjectGrades is a subject with its raw grades and its computed standing
type SubjectGrades struct {
	Subject model.Subject `json:"subject"`
	Grades  []model.Grade `json:"grades"`
	SubjectStanding
}

// SubjectSummary aggregates the grades of one subject
func (s *GradeService) SubjectSummary(ctx context.Context, subjectID uint) (*SubjectGrades, error) {
	var subject model.Subject
	if err := s.db.WithContext(ctx).First(&subject, subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load subject %d: %w", subjectID, err)
	}

	var grades []model.Grade
	if err := s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("id ASC").
		Find(&grades).Error; err != nil {
		return nil, fmt.Errorf("failed to load grades of subject %d: %w", subjectID, err)
	}

	return summarize(subject, grades), nil
}

// SemesterSummary aggregates the grades of every subject of a semester.
// It returns ErrNotFound when the semester has no subjects.
func (s *GradeService) SemesterSummary(ctx context.Context, semesterID uint) ([]SubjectGrades, error) {
	var subjects []model.Subject
	if err := s.db.WithContext(ctx).
		Preload("Grades", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("semester_id = ?", semesterID).
		Order("id ASC").
		Find(&subjects).Error; err != nil {
		return nil, fmt.Errorf("failed to load subjects of semester %d: %w", semesterID, err)
	}

	if len(subjects) == 0 {
		return nil, ErrNotFound
	}

	summaries := make([]SubjectGrades, 0, len(subjects))
	for _, subject := range subjects {
		grades := subject.Grades
		subject.Grades = nil
		summaries = append(summaries, *summarize(subject, grades))
	}

	return summaries, nil
}

func summarize(subject model.Subject, grades []model.Grade) *SubjectGrades {
	if grades == nil {
		grades = []model.Grade{}
	}

	items := make([]GradeItem, 0, len(grades))
	for _, g := range grades {
		items = append(items, GradeItem{Weight: g.Weight, Score: g.Score, MaxScore: g.MaxScore})
	}

	return &SubjectGrades{
		Subject:         subject,
		Grades:          grades,
		SubjectStanding: ComputeStanding(items),
	}
}
