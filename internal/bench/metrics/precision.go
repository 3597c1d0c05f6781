package metrics

import (
	"math"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
)

// AveragePrecision computes the mean of precision@p over every position p that
// holds a relevant item (value > 0). Precision@p sums the relevance values in
// positions 1..p, so graded values contribute their magnitude.
// A ranking without relevant items scores 0.
func AveragePrecision(r ranking.Ranking) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	var (
		cumulative   float64
		sumPrecision float64
		relevant     int
	)

	for i, rel := range r {
		cumulative += rel
		if rel > 0 {
			relevant++
			sumPrecision += cumulative / float64(i+1)
		}
	}

	if relevant == 0 {
		return 0, nil
	}

	return finite("average precision", sumPrecision/float64(relevant))
}

// finite rejects scores that overflowed float64 on extreme relevance values.
func finite(metric string, score float64) (float64, error) {
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return 0, apperr.NewInvalidInputf("%s overflows float64 for this ranking", metric)
	}
	return score, nil
}
