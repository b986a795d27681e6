package services

import "math"

const (
	// MaxGradeScore is the top of the grading scale
	MaxGradeScore = 5.0
	// PassingGrade is the weighted average a subject must reach to be passed
	PassingGrade = 5.0
	// FullWeight is the total weight of all evaluations of a subject, in percentage points
	FullWeight = 100.0
)

// GradeItem is one weighted evaluation. A nil Score means not yet graded.
type GradeItem struct {
	Weight   float64
	Score    *float64
	MaxScore *float64
}

// SubjectStanding is the aggregate position of a student in one subject
type SubjectStanding struct {
	CurrentGrade *float64 `json:"current_grade"`
	NeededScore  *float64 `json:"needed_score"`
	Passed       bool     `json:"passed"`
}

// ComputeStanding aggregates graded items into the current weighted average, the
// average still needed over the remaining weight to reach PassingGrade, and the pass flag.
//
// CurrentGrade is nil while nothing with positive weight is graded. NeededScore is nil
// once the graded weight covers FullWeight, and otherwise clamped to [0, MaxGradeScore].
func ComputeStanding(items []GradeItem) SubjectStanding {
	var totalWeight, weightedScore float64
	for _, item := range items {
		if item.Score == nil {
			continue
		}
		totalWeight += item.Weight
		weightedScore += *item.Score * item.Weight
	}

	var standing SubjectStanding

	if totalWeight > 0 {
		// passed is judged on the rounded grade that is reported
		current := round2(weightedScore / totalWeight)
		standing.Passed = current >= PassingGrade
		standing.CurrentGrade = &current
	}

	if remaining := FullWeight - totalWeight; remaining > 0 {
		needed := (PassingGrade*FullWeight - weightedScore) / remaining
		needed = round2(math.Min(math.Max(needed, 0), MaxGradeScore))
		standing.NeededScore = &needed
	}

	return standing
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
