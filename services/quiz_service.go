package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studytrack/studytrack-api/model"
	"gorm.io/gorm"
)

// QuizService handles quiz creation and answering
type QuizService struct {
	db *gorm.DB
}

// NewQuizService creates a new quiz service
func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// QuestionInput is one multiple choice question; CorrectAnswer indexes Options
type QuestionInput struct {
	Question      string
	Options       []string
	CorrectAnswer int
}

// CreateQuizInput describes a quiz with its questions
type CreateQuizInput struct {
	SubjectID uint
	Name      string
	Class     string
	Source    model.QuizSource
	Questions []QuestionInput
}

// CreateQuiz inserts the quiz and all of its questions in one transaction.
// Nothing is written when the subject is missing or any answer index is out of range.
func (s *QuizService) CreateQuiz(ctx context.Context, in CreateQuizInput) (*model.Quiz, error) {
	questions := make([]model.QuizQuestion, 0, len(in.Questions))
	for i, q := range in.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: %w", i, ErrInvalidAnswerIndex)
		}
		questions = append(questions, model.QuizQuestion{
			Type:          model.QuestionTypeMultipleChoice,
			QuestionText:  q.Question,
			Options:       q.Options,
			CorrectAnswer: q.Options[q.CorrectAnswer],
		})
	}

	source := in.Source
	if source == "" {
		source = model.QuizSourceNotes
	}

	quiz := model.Quiz{
		SubjectID: in.SubjectID,
		Name:      in.Name,
		Class:     in.Class,
		Source:    source,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Subject{}, in.SubjectID); err != nil {
			return err
		}

		if err := tx.Create(&quiz).Error; err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return fmt.Errorf("failed to create quiz questions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	quiz.Questions = questions
	return &quiz, nil
}

// AnswerQuestion stores the student's answer and optional feedback on a question
func (s *QuizService) AnswerQuestion(ctx context.Context, questionID uint, answer string, feedback *string) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := s.db.WithContext(ctx).First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load question %d: %w", questionID, err)
	}

	updates := map[string]interface{}{"user_answer": answer}
	if feedback != nil {
		updates["feedback"] = *feedback
	}

	if err := s.db.WithContext(ctx).Model(&question).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to answer question %d: %w", questionID, err)
	}

	question.UserAnswer = &answer
	if feedback != nil {
		question.Feedback = feedback
	}
	return &question, nil
}

// requireRow returns ErrNotFound unless a row of the given model exists with that id
func requireRow(db *gorm.DB, value interface{}, id uint) error {
	var count int64
	if err := db.Model(value).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check parent %d: %w", id, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
