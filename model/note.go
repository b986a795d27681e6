package model

import "time"

// NoteFormat is the markup a note's content is written in
type NoteFormat string

const (
	NoteFormatMarkdown NoteFormat = "markdown"
	NoteFormatLatex    NoteFormat = "latex"
	NoteFormatText     NoteFormat = "text"
)

// Note is free-form study material written by a user
type Note struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	DocumentID *uint      `gorm:"index" json:"document_id"`
	SubjectID  *uint      `gorm:"index" json:"subject_id"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Format     NoteFormat `gorm:"type:varchar(20);not null" json:"format"`
}
