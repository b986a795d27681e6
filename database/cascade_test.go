package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/testutil"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func rows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Count(&n).Error)
	return n
}

func seedTree(t *testing.T, db *gorm.DB) (*model.User, *model.Subject) {
	t.Helper()

	user := testutil.CreateUser(t, db, "tree@example.com")
	semester := testutil.CreateSemester(t, db, user.ID)
	subject := testutil.CreateSubject(t, db, semester.ID, "Geometry")
	testutil.CreateGrade(t, db, subject.ID, 50, testutil.Float(4))

	doc := model.Document{UserID: user.ID, SubjectID: &subject.ID, Title: "Notes scan", Type: model.DocumentTypePDF, FileURL: "uploads/scan.pdf"}
	require.NoError(t, db.Create(&doc).Error)
	require.NoError(t, db.Create(&model.Note{UserID: user.ID, SubjectID: &subject.ID, DocumentID: &doc.ID,
		Title: "Triangles", Content: "a^2 + b^2 = c^2", Format: model.NoteFormatLatex}).Error)

	quiz := model.Quiz{SubjectID: subject.ID, Name: "Angles", Class: "GEO", Source: model.QuizSourceNotes,
		Questions: []model.QuizQuestion{{Type: model.QuestionTypeMultipleChoice, QuestionText: "Right angle?",
			Options: datatypes.JSONSlice[string]{"90", "180"}, CorrectAnswer: "90"}}}
	require.NoError(t, db.Create(&quiz).Error)
	require.NoError(t, db.Create(&model.GlossaryTerm{SubjectID: subject.ID, Term: "Vertex", Definition: "Corner", Source: model.TermSourceUser}).Error)
	require.NoError(t, db.Create(&model.ConceptMap{SubjectID: subject.ID,
		Data: datatypes.NewJSONType(model.ConceptGraph{Topic: "Shapes", Nodes: []model.ConceptNode{}, Edges: []model.ConceptEdge{}})}).Error)

	return user, subject
}

func TestDeleteUserCascades(t *testing.T) {
	db := testutil.NewDB(t)
	user, _ := seedTree(t, db)

	require.NoError(t, db.Delete(&model.User{}, user.ID).Error)

	for _, m := range []interface{}{
		&model.Semester{}, &model.Subject{}, &model.Grade{}, &model.Document{}, &model.Note{},
		&model.Quiz{}, &model.QuizQuestion{}, &model.GlossaryTerm{}, &model.ConceptMap{},
	} {
		assert.Zero(t, rows(t, db, m), "%T", m)
	}
}

func TestDeleteSubjectDetachesNotesAndDocuments(t *testing.T) {
	db := testutil.NewDB(t)
	_, subject := seedTree(t, db)

	require.NoError(t, db.Delete(&model.Subject{}, subject.ID).Error)

	for _, m := range []interface{}{&model.Grade{}, &model.Quiz{}, &model.QuizQuestion{}, &model.GlossaryTerm{}, &model.ConceptMap{}} {
		assert.Zero(t, rows(t, db, m), "%T", m)
	}

	var note model.Note
	require.NoError(t, db.First(&note).Error)
	assert.Nil(t, note.SubjectID)
	assert.NotNil(t, note.DocumentID)

	var doc model.Document
	require.NoError(t, db.First(&doc).Error)
	assert.Nil(t, doc.SubjectID)
}

func TestDuplicateEmailIsTranslated(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "twice@example.com")

	err := db.Create(&model.User{Name: "Again", Email: "twice@example.com", PasswordHash: "x", School: "S"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestHealthCheck(t *testing.T) {
	store := testutil.NewStore(t)
	assert.NoError(t, store.HealthCheck(context.Background()))
}
