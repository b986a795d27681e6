package model

import (
	"time"
)

// DocumentType represents the kind of uploaded material
type DocumentType string

const (
	DocumentTypeImage DocumentType = "image"
	DocumentTypePDF   DocumentType = "pdf"
	DocumentTypeVoice DocumentType = "voice"
	DocumentTypeText  DocumentType = "text"
)

// Document represents an uploaded file owned by a user, optionally filed under a subject
type Document struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	SubjectID *uint        `gorm:"index" json:"subject_id"` // Nulled when the subject is deleted
	Title     string       `gorm:"not null" json:"title"`
	Type      DocumentType `gorm:"type:varchar(20);not null" json:"type"`
	FileURL   string       `gorm:"type:text;not null" json:"file_url"` // storage location (local path or bucket URL)

	// Text produced upstream by OCR or speech-to-text
	ExtractedText *string `gorm:"type:text" json:"extracted_text"`

	// Relationships
	Notes []Note `gorm:"foreignKey:DocumentID;constraint:OnDelete:SET NULL" json:"-"`
}
