package model

import "time"

// Grade is a single weighted evaluation (exam, assignment...) of a subject.
// Score and MaxScore stay nil until the item is graded.
type Grade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SubjectID uint      `gorm:"not null;index" json:"subject_id"`
	Name      string    `gorm:"not null" json:"name"`   // e.g. "Midterm 1", "Homework 2"
	Weight    float64   `gorm:"not null" json:"weight"` // percentage points
	Score     *float64  `json:"score"`
	MaxScore  *float64  `json:"max_score"`
}
