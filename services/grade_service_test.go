package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/testutil"
)

func TestSemesterSummary(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGradeService(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "grades@example.com")
	semester := testutil.CreateSemester(t, db, user.ID)

	calculus := testutil.CreateSubject(t, db, semester.ID, "Calculus")
	testutil.CreateGrade(t, db, calculus.ID, 30, testutil.Float(4))
	testutil.CreateGrade(t, db, calculus.ID, 30, testutil.Float(5))
	testutil.CreateGrade(t, db, calculus.ID, 40, nil)

	physics := testutil.CreateSubject(t, db, semester.ID, "Physics")
	testutil.CreateGrade(t, db, physics.ID, 50, testutil.Float(3))
	testutil.CreateGrade(t, db, physics.ID, 50, testutil.Float(5))

	testutil.CreateSubject(t, db, semester.ID, "Chemistry")

	summaries, err := svc.SemesterSummary(ctx, semester.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	calc := summaries[0]
	assert.Equal(t, "Calculus", calc.Subject.Name)
	assert.Len(t, calc.Grades, 3)
	require.NotNil(t, calc.CurrentGrade)
	assert.Equal(t, 4.5, *calc.CurrentGrade)
	require.NotNil(t, calc.NeededScore)
	assert.Equal(t, 5.0, *calc.NeededScore)
	assert.False(t, calc.Passed)

	phys := summaries[1]
	require.NotNil(t, phys.CurrentGrade)
	assert.Equal(t, 4.0, *phys.CurrentGrade)
	assert.Nil(t, phys.NeededScore)
	assert.False(t, phys.Passed)

	chem := summaries[2]
	assert.Empty(t, chem.Grades)
	assert.NotNil(t, chem.Grades)
	assert.Nil(t, chem.CurrentGrade)
	require.NotNil(t, chem.NeededScore)
	assert.Equal(t, 5.0, *chem.NeededScore)
	assert.False(t, chem.Passed)
}

func TestSemesterSummaryWithoutSubjects(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGradeService(db)

	user := testutil.CreateUser(t, db, "empty@example.com")
	semester := testutil.CreateSemester(t, db, user.ID)

	_, err := svc.SemesterSummary(context.Background(), semester.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SemesterSummary(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectSummary(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGradeService(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "subject@example.com")
	semester := testutil.CreateSemester(t, db, user.ID)
	subject := testutil.CreateSubject(t, db, semester.ID, "Algebra")
	testutil.CreateGrade(t, db, subject.ID, 100, testutil.Float(5))

	summary, err := svc.SubjectSummary(ctx, subject.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.CurrentGrade)
	assert.Equal(t, 5.0, *summary.CurrentGrade)
	assert.Nil(t, summary.NeededScore)
	assert.True(t, summary.Passed)

	_, err = svc.SubjectSummary(ctx, subject.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}
