package model

import (
	"time"
)

// Roles a user can hold
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered student (or administrator) of the tracker
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	School       string    `gorm:"not null" json:"school"`
	TokenVersion int       `gorm:"default:0" json:"-"` // Increment to invalidate all user tokens

	// Relationships
	Semesters      []Semester          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notes          []Note              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Documents      []Document          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
