// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/database"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/auth"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password of users created by CreateUser
const DefaultPassword = "correct-horse"

// NewStore returns a migrated in-memory sqlite store private to the test
func NewStore(t *testing.T) *database.GORMStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	store, err := database.OpenSQLite(dsn, applog.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Init())

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewDB returns the GORM handle of a fresh in-memory store
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewStore(t).GetDB()
}

// CreateUser inserts a student whose password is DefaultPassword
func CreateUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &model.User{
		Name:         "Test Student",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		School:       "Test School",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateSemester inserts a semester for the user
func CreateSemester(t *testing.T, db *gorm.DB, userID uint) *model.Semester {
	t.Helper()

	semester := &model.Semester{UserID: userID, Year: 2025, Period: "2025-1"}
	require.NoError(t, db.Create(semester).Error)
	return semester
}

// CreateSubject inserts a subject in the semester
func CreateSubject(t *testing.T, db *gorm.DB, semesterID uint, name string) *model.Subject {
	t.Helper()

	subject := &model.Subject{SemesterID: semesterID, Name: name, Code: "SUB101", Credits: 3}
	require.NoError(t, db.Create(subject).Error)
	return subject
}

// CreateGrade inserts a grade; a nil score leaves it ungraded
func CreateGrade(t *testing.T, db *gorm.DB, subjectID uint, weight float64, score *float64) *model.Grade {
	t.Helper()

	var maxScore *float64
	if score != nil {
		five := 5.0
		maxScore = &five
	}
	grade := &model.Grade{SubjectID: subjectID, Name: "Evaluation", Weight: weight, Score: score, MaxScore: maxScore}
	require.NoError(t, db.Create(grade).Error)
	return grade
}

// Float returns a pointer to v
func Float(v float64) *float64 { return &v }

// Uint returns a pointer to v
func Uint(v uint) *uint { return &v }
