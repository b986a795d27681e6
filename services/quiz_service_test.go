package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/testutil"
)

func TestCreateQuiz(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuizService(db)

	user := testutil.CreateUser(t, db, "quiz@example.com")
	subject := testutil.CreateSubject(t, db, testutil.CreateSemester(t, db, user.ID).ID, "History")

	quiz, err := svc.CreateQuiz(context.Background(), CreateQuizInput{
		SubjectID: subject.ID,
		Name:      "Unit 1",
		Class:     "HIS-1",
		Questions: []QuestionInput{
			{Question: "First emperor of Rome?", Options: []string{"Augustus", "Nero", "Caligula"}, CorrectAnswer: 0},
			{Question: "Year of the fall of Constantinople?", Options: []string{"1204", "1453"}, CorrectAnswer: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.QuizSourceNotes, quiz.Source)
	require.Len(t, quiz.Questions, 2)

	var stored []model.QuizQuestion
	require.NoError(t, db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "Augustus", stored[0].CorrectAnswer)
	assert.Equal(t, "1453", stored[1].CorrectAnswer)
	assert.Equal(t, []string{"1204", "1453"}, []string(stored[1].Options))
	assert.Equal(t, model.QuestionTypeMultipleChoice, stored[1].Type)
	assert.Nil(t, stored[0].UserAnswer)
}

func TestCreateQuizRejectsBadAnswerIndex(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuizService(db)

	user := testutil.CreateUser(t, db, "badquiz@example.com")
	subject := testutil.CreateSubject(t, db, testutil.CreateSemester(t, db, user.ID).ID, "History")

	_, err := svc.CreateQuiz(context.Background(), CreateQuizInput{
		SubjectID: subject.ID,
		Name:      "Broken",
		Class:     "HIS-1",
		Questions: []QuestionInput{
			{Question: "ok", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Question: "bad", Options: []string{"a", "b"}, CorrectAnswer: 2},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidAnswerIndex)

	var quizzes, questions int64
	db.Model(&model.Quiz{}).Count(&quizzes)
	db.Model(&model.QuizQuestion{}).Count(&questions)
	assert.Zero(t, quizzes)
	assert.Zero(t, questions)
}

func TestCreateQuizMissingSubjectWritesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuizService(db)

	_, err := svc.CreateQuiz(context.Background(), CreateQuizInput{
		SubjectID: 42,
		Name:      "Orphan",
		Class:     "X",
		Questions: []QuestionInput{{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 0}},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var quizzes int64
	db.Model(&model.Quiz{}).Count(&quizzes)
	assert.Zero(t, quizzes)
}

func TestAnswerQuestion(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuizService(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "answer@example.com")
	subject := testutil.CreateSubject(t, db, testutil.CreateSemester(t, db, user.ID).ID, "Biology")
	quiz, err := svc.CreateQuiz(ctx, CreateQuizInput{
		SubjectID: subject.ID,
		Name:      "Cells",
		Class:     "BIO",
		Questions: []QuestionInput{{Question: "Powerhouse of the cell?", Options: []string{"Nucleus", "Mitochondria"}, CorrectAnswer: 1}},
	})
	require.NoError(t, err)
	questionID := quiz.Questions[0].ID

	feedback := "Correct"
	answered, err := svc.AnswerQuestion(ctx, questionID, "Mitochondria", &feedback)
	require.NoError(t, err)
	require.NotNil(t, answered.UserAnswer)
	assert.Equal(t, "Mitochondria", *answered.UserAnswer)

	var stored model.QuizQuestion
	require.NoError(t, db.First(&stored, questionID).Error)
	require.NotNil(t, stored.UserAnswer)
	assert.Equal(t, "Mitochondria", *stored.UserAnswer)
	require.NotNil(t, stored.Feedback)
	assert.Equal(t, "Correct", *stored.Feedback)

	_, err = svc.AnswerQuestion(ctx, questionID+10, "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
