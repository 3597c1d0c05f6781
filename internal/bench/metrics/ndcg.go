package metrics

import (
	"math"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
)

type ndcgOptions struct {
	k    int
	hasK bool
}

type NDCGOption func(*ndcgOptions)

// AtK limits NDCG to the top k positions. Without it the full ranking is used.
// A k larger than the ranking is clamped to its length.
func AtK(k int) NDCGOption {
	return func(o *ndcgOptions) {
		o.k = k
		o.hasK = true
	}
}

// NormalizedDCG computes DCG = sum(rel_i / log2(i+1)) over the first k positions,
// divided by the DCG of the full ranking sorted descending and cut to the same k.
// A ranking whose values sum to zero scores 0 whatever k is.
func NormalizedDCG(r ranking.Ranking, opts ...NDCGOption) (float64, error) {
	var o ndcgOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasK && o.k <= 0 {
		return 0, apperr.NewInvalidInputf("k must be positive, got %d", o.k)
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	if r.Sum() == 0 {
		return 0, nil
	}

	k := len(r)
	if o.hasK {
		k = min(k, o.k)
	}

	// Ideal is sorted over the whole ranking before it is cut to k.
	ideal := r.Ideal()

	return finite("ndcg", dcgAtK(r, k)/dcgAtK(ideal, k))
}

func dcgAtK(r ranking.Ranking, k int) float64 {
	var dcg float64
	for i := 0; i < k; i++ {
		dcg += r[i] / math.Log2(float64(i+2))
	}
	return dcg
}
