// Package ranking holds the relevance values a ranked result list induces,
// one value per position with position 1 at index 0.
package ranking

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/google/uuid"
)

const (
	GradeNotRelevant = 0
	GradeMarginally  = 1
	GradeRelevant    = 2
	GradeHighly      = 3
)

type Ranking []float64

// Validate rejects NaN, infinite and negative values. An empty ranking is valid.
func (r Ranking) Validate() error {
	for i, v := range r {
		switch {
		case math.IsNaN(v):
			return apperr.NewInvalidInputf("relevance at position %d is NaN", i+1)
		case math.IsInf(v, 0):
			return apperr.NewInvalidInputf("relevance at position %d is infinite", i+1)
		case v < 0:
			return apperr.NewInvalidInputf("relevance at position %d is negative (%g)", i+1, v)
		}
	}
	return nil
}

func (r Ranking) Sum() float64 {
	var sum float64
	for _, v := range r {
		sum += v
	}
	return sum
}

// Ideal returns a copy of r sorted by relevance, highest first.
func (r Ranking) Ideal() Ranking {
	ideal := make(Ranking, len(r))
	copy(ideal, r)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))
	return ideal
}

// Parse builds a Ranking from textual values such as command line arguments.
func Parse(values []string) (Ranking, error) {
	r := make(Ranking, 0, len(values))
	for i, raw := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, apperr.NewInvalidInputf("relevance at position %d is not a number: %q", i+1, raw)
		}
		r = append(r, v)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FromJudgments maps an engine's ranked document IDs to their judged grades.
// Unjudged documents count as not relevant.
func FromJudgments(ranked []uuid.UUID, judgments map[uuid.UUID]int) Ranking {
	r := make(Ranking, len(ranked))
	for i, docID := range ranked {
		r[i] = float64(judgments[docID])
	}
	return r
}
