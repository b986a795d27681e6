package model

import (
	"time"
)

// Semester represents an academic term of a single user
type Semester struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Year      int       `gorm:"not null" json:"year"`                    // e.g. 2025
	Period    string    `gorm:"type:varchar(40);not null" json:"period"` // e.g. "2025-1"

	// Relationships
	Subjects []Subject `gorm:"foreignKey:SemesterID;constraint:OnDelete:CASCADE" json:"subjects,omitempty"`
}

// Subject represents a course taken during a semester
type Subject struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	SemesterID uint      `gorm:"not null;index" json:"semester_id"`
	Name       string    `gorm:"not null" json:"name"`
	Code       string    `gorm:"type:varchar(20);not null" json:"code"`
	Credits    int       `gorm:"not null" json:"credits"`

	// Relationships
	Grades        []Grade        `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	Quizzes       []Quiz         `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	GlossaryTerms []GlossaryTerm `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	ConceptMaps   []ConceptMap   `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	Notes         []Note         `gorm:"foreignKey:SubjectID;constraint:OnDelete:SET NULL" json:"-"`
	Documents     []Document     `gorm:"foreignKey:SubjectID;constraint:OnDelete:SET NULL" json:"-"`
}
