package model

import (
	"time"

	"gorm.io/datatypes"
)

// ConceptNode is a labelled vertex of a concept map. Level is the depth in the hierarchy (0 = root).
type ConceptNode struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Level       *int    `json:"level,omitempty"`
}

// ConceptEdge links two nodes by id
type ConceptEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"`
}

// ConceptGraph is the document stored in a concept map row
type ConceptGraph struct {
	Topic string        `json:"topic"`
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}

// ConceptMap stores one graph for a subject. The graph is serialized as JSON only at the column level.
type ConceptMap struct {
	ID        uint                             `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time                        `json:"created_at"`
	SubjectID uint                             `gorm:"not null;index" json:"subject_id"`
	Data      datatypes.JSONType[ConceptGraph] `gorm:"not null" json:"data"`
}

// Graph returns the decoded graph
func (m ConceptMap) Graph() ConceptGraph {
	return m.Data.Data()
}
