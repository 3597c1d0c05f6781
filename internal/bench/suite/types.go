package suite

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
	"github.com/google/uuid"
)

var DefaultKValues = []int{3, 5, 10}

type TestSuite struct {
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	KValues     []int   `yaml:"k_values" validate:"dive,gt=0"`
	Entries     []Entry `yaml:"rankings" validate:"required,min=1,dive"`
}

// Entry is one ranking to score. It is given either directly as relevance
// values, or as an engine's ranked document IDs plus graded judgments.
type Entry struct {
	ID          string              `yaml:"id" validate:"required"`
	Description string              `yaml:"description,omitempty"`
	Relevance   []float64           `yaml:"relevance,omitempty"`
	Ranked      []uuid.UUID         `yaml:"ranked,omitempty"`
	Judgments   []RelevanceJudgment `yaml:"judgments,omitempty" validate:"dive"`
}

type RelevanceJudgment struct {
	DocID     uuid.UUID `yaml:"doc_id" validate:"required"`
	Relevance int       `yaml:"relevance" validate:"gte=0"`
}

// JudgmentMap converts the judgments slice to a map keyed by doc ID.
func (e *Entry) JudgmentMap() map[uuid.UUID]int {
	m := make(map[uuid.UUID]int, len(e.Judgments))
	for _, j := range e.Judgments {
		m[j.DocID] = j.Relevance
	}
	return m
}

// Ranking resolves the entry to the relevance values it scores.
func (e *Entry) Ranking() ranking.Ranking {
	if e.Ranked == nil {
		r := make(ranking.Ranking, len(e.Relevance))
		copy(r, e.Relevance)
		return r
	}
	return ranking.FromJudgments(e.Ranked, e.JudgmentMap())
}
