package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizSource tells which material a quiz was generated from
type QuizSource string

const (
	QuizSourceNotes    QuizSource = "notes"
	QuizSourceSyllabus QuizSource = "syllabus"
	QuizSourceUploads  QuizSource = "uploads"
	QuizSourceMixed    QuizSource = "mixed"
)

// QuestionType is the answer format of a quiz question
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeText           QuestionType = "text"
)

// Quiz groups questions for a subject
type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	SubjectID uint       `gorm:"not null;index" json:"subject_id"`
	Name      string     `gorm:"not null" json:"name"`
	Class     string     `gorm:"column:class;not null" json:"class"`
	Source    QuizSource `gorm:"type:varchar(20);not null" json:"source"`

	// Relationships
	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// QuizQuestion is a single question. UserAnswer and Feedback are filled once the quiz is taken.
type QuizQuestion struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	QuizID        uint                        `gorm:"not null;index" json:"quiz_id"`
	Type          QuestionType                `gorm:"type:varchar(20);not null" json:"type"`
	QuestionText  string                      `gorm:"type:text;not null" json:"question_text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correct_answer"`
	UserAnswer    *string                     `gorm:"type:text" json:"user_answer"`
	Feedback      *string                     `gorm:"type:text" json:"feedback"`
}
