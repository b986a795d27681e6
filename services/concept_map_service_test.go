package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/testutil"
)

func sampleGraph() model.ConceptGraph {
	desc := "Energy conversion in plants"
	root, child := 0, 1
	return model.ConceptGraph{
		Topic: "Photosynthesis",
		Nodes: []model.ConceptNode{
			{ID: "n1", Label: "Photosynthesis", Description: &desc, Level: &root},
			{ID: "n2", Label: "Chlorophyll", Level: &child},
			{ID: "n3", Label: "Glucose"},
		},
		Edges: []model.ConceptEdge{
			{From: "n1", To: "n2", Relation: "requires"},
			{From: "n1", To: "n3", Relation: "produces"},
		},
	}
}

func TestConceptMapRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewConceptMapService(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "maps@example.com")
	subject := testutil.CreateSubject(t, db, testutil.CreateSemester(t, db, user.ID).ID, "Biology")

	created, err := svc.Create(ctx, subject.ID, sampleGraph())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	var stored model.ConceptMap
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, sampleGraph(), stored.Graph())

	var bySubject []model.ConceptMap
	require.NoError(t, db.Where("subject_id = ?", subject.ID).Find(&bySubject).Error)
	require.Len(t, bySubject, 1)
	assert.Equal(t, sampleGraph(), bySubject[0].Graph())
}

func TestConceptMapReplace(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewConceptMapService(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "replace@example.com")
	subject := testutil.CreateSubject(t, db, testutil.CreateSemester(t, db, user.ID).ID, "Biology")

	created, err := svc.Create(ctx, subject.ID, sampleGraph())
	require.NoError(t, err)

	updated, err := svc.Replace(ctx, created.ID, model.ConceptGraph{Topic: "Respiration"})
	require.NoError(t, err)
	assert.Equal(t, "Respiration", updated.Graph().Topic)

	var stored model.ConceptMap
	require.NoError(t, db.First(&stored, created.ID).Error)
	graph := stored.Graph()
	assert.Equal(t, "Respiration", graph.Topic)
	assert.Empty(t, graph.Nodes)
	assert.NotNil(t, graph.Nodes)

	_, err = svc.Replace(ctx, created.ID+1, sampleGraph())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, subject.ID+1, sampleGraph())
	assert.ErrorIs(t, err, ErrNotFound)
}
