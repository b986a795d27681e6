package quiz

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/handlers"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/utils/response"
	"github.com/studytrack/studytrack-api/utils/validation"
	"gorm.io/gorm"
)

// QuizHandler handles quiz-related requests
type QuizHandler struct {
	db          *gorm.DB
	validator   *validation.Validator
	quizService *services.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(db *gorm.DB, quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		db:          db,
		validator:   validation.NewValidator(),
		quizService: quizService,
	}
}

// QuestionRequest is one question of a quiz being created
type QuestionRequest struct {
	ID            int      `json:"id" validate:"gte=0"`
	Question      string   `json:"question" validate:"required,min=1"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer *int     `json:"correctAnswer" validate:"required,gte=0"`
}

// CreateQuizRequest represents the request body for creating a quiz with its questions
type CreateQuizRequest struct {
	ID        string            `json:"id"`
	Name      string            `json:"name" validate:"required,min=1"`
	Class     string            `json:"class" validate:"required,min=1"`
	SubjectID uint              `json:"subject_id" validate:"required,min=1"`
	Source    string            `json:"source" validate:"omitempty,oneof=notes syllabus uploads mixed"`
	Questions []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// AnswerRequest represents the request body for answering a question
type AnswerRequest struct {
	UserAnswer string  `json:"user_answer" validate:"required"`
	Feedback   *string `json:"feedback"`
}

// CreatedQuiz is the quiz returned after creation
type CreatedQuiz struct {
	model.Quiz
	TotalQuestions int `json:"total_questions"`
}

// ListQuizzes handles GET /api/quizzes/subject/:subjectId
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	subjectID, err := handlers.ParseID(c, "subjectId")
	if err != nil {
		return handlers.Done(err)
	}
	return handlers.ListBy[model.Quiz](c, h.db, "No quizzes found for this subject", "subject_id = ?", subjectID)
}

// GetQuiz handles GET /api/quizzes/:id and includes the questions
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		return handlers.Done(err)
	}

	var quiz model.Quiz
	if err := h.db.WithContext(c.UserContext()).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Quiz not found")
		}
		return err
	}

	return response.Success(c, quiz)
}

// ListQuestions handles GET /api/quizzes/:id/questions. A quiz without questions yields an empty list.
func (h *QuizHandler) ListQuestions(c *fiber.Ctx) error {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		return handlers.Done(err)
	}

	questions := []model.QuizQuestion{}
	if err := h.db.WithContext(c.UserContext()).
		Where("quiz_id = ?", id).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return err
	}

	for i := range questions {
		if questions[i].Options == nil {
			questions[i].Options = []string{}
		}
	}

	return response.Success(c, questions)
}

// CreateQuiz handles POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	in := services.CreateQuizInput{
		SubjectID: req.SubjectID,
		Name:      req.Name,
		Class:     req.Class,
		Source:    model.QuizSource(req.Source),
		Questions: make([]services.QuestionInput, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, services.QuestionInput{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
		})
	}

	quiz, err := h.quizService.CreateQuiz(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAnswerIndex):
			return response.ValidationError(c, fiber.Map{"questions": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			return response.NotFound(c, "Subject not found")
		}
		return err
	}

	return response.Created(c, "Quiz created successfully", fiber.Map{
		"quiz": CreatedQuiz{Quiz: *quiz, TotalQuestions: len(quiz.Questions)},
	})
}

// AnswerQuestion handles PUT /api/quizzes/questions/:questionId/answer
func (h *QuizHandler) AnswerQuestion(c *fiber.Ctx) error {
	questionID, err := handlers.ParseID(c, "questionId")
	if err != nil {
		return handlers.Done(err)
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	question, err := h.quizService.AnswerQuestion(c.UserContext(), questionID, req.UserAnswer, req.Feedback)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return response.NotFound(c, fmt.Sprintf("Question %d not found", questionID))
		}
		return err
	}

	return response.Success(c, question)
}

// DeleteQuiz handles DELETE /api/quizzes/:id; its questions are deleted with it
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	return handlers.DeleteByID[model.Quiz](c, h.db, "id", "Quiz not found")
}
