package model

import "time"

// TermSource marks who authored a glossary term
type TermSource string

const (
	TermSourceUser TermSource = "user"
	TermSourceAI   TermSource = "ai"
)

// GlossaryTerm is a term/definition pair attached to a subject
type GlossaryTerm struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	SubjectID  uint       `gorm:"not null;index" json:"subject_id"`
	Term       string     `gorm:"not null" json:"term"`
	Definition string     `gorm:"type:text;not null" json:"definition"`
	Source     TermSource `gorm:"type:varchar(10);not null" json:"source"`
}
