package metrics

import (
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
)

// ScoreSet bundles every score computed over a single ranking.
type ScoreSet struct {
	AP      float64         `json:"ap"`
	NDCG    float64         `json:"ndcg"`
	NDCGAtK map[int]float64 `json:"ndcg_at_k,omitempty"` // K -> NDCG@K
}

func Evaluate(r ranking.Ranking, kValues []int) (ScoreSet, error) {
	s := ScoreSet{NDCGAtK: make(map[int]float64, len(kValues))}

	var err error
	if s.AP, err = AveragePrecision(r); err != nil {
		return ScoreSet{}, fmt.Errorf("average precision: %w", err)
	}
	if s.NDCG, err = NormalizedDCG(r); err != nil {
		return ScoreSet{}, fmt.Errorf("ndcg: %w", err)
	}

	for _, k := range kValues {
		score, err := NormalizedDCG(r, AtK(k))
		if err != nil {
			return ScoreSet{}, fmt.Errorf("ndcg@%d: %w", k, err)
		}
		s.NDCGAtK[k] = score
	}

	return s, nil
}
