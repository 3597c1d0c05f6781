package metrics

import (
	"math"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAveragePrecision(t *testing.T) {
	tests := []struct {
		name    string
		ranking ranking.Ranking
		want    float64
	}{
		{
			name:    "empty",
			ranking: nil,
			want:    0,
		},
		{
			name:    "no relevant items",
			ranking: ranking.Ranking{0, 0, 0},
			want:    0,
		},
		{
			name:    "all relevant",
			ranking: ranking.Ranking{1, 1, 1, 1},
			want:    1.0,
		},
		{
			name:    "alternating binary",
			ranking: ranking.Ranking{1, 0, 1, 0, 1},
			// 1/1, 2/3, 3/5
			want: (1.0 + 2.0/3.0 + 3.0/5.0) / 3.0,
		},
		{
			name:    "first relevant at position 2",
			ranking: ranking.Ranking{0, 2, 0, 1},
			// 2/2, 3/4
			want: (1.0 + 0.75) / 2.0,
		},
		{
			name:    "graded values contribute magnitude",
			ranking: ranking.Ranking{3, 0, 2},
			// 3/1, 5/3
			want: (3.0 + 5.0/3.0) / 2.0,
		},
		{
			name:    "fractional values",
			ranking: ranking.Ranking{0.5, 0, 0.5},
			want:    (0.5 + 1.0/3.0) / 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AveragePrecision(tt.ranking)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAveragePrecision_AllOnesIsExact(t *testing.T) {
	r := make(ranking.Ranking, 1000)
	for i := range r {
		r[i] = 1
	}

	got, err := AveragePrecision(r)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestAveragePrecision_InvalidInput(t *testing.T) {
	for name, r := range map[string]ranking.Ranking{
		"nan":      {1, math.NaN()},
		"inf":      {math.Inf(1), 0},
		"negative": {1, -1, 1},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := AveragePrecision(r)
			require.Error(t, err)
			assert.True(t, apperr.IsInvalidInput(err))
			assert.Zero(t, got)
		})
	}
}

func TestNormalizedDCG(t *testing.T) {
	graded := ranking.Ranking{3, 2, 3, 0, 1, 2}
	gradedDCG := 3/math.Log2(2) + 2/math.Log2(3) + 3/math.Log2(4) + 0/math.Log2(5) + 1/math.Log2(6) + 2/math.Log2(7)
	gradedIDCG := 3/math.Log2(2) + 3/math.Log2(3) + 2/math.Log2(4) + 2/math.Log2(5) + 1/math.Log2(6) + 0/math.Log2(7)

	tests := []struct {
		name    string
		ranking ranking.Ranking
		opts    []NDCGOption
		want    float64
	}{
		{
			name:    "empty",
			ranking: nil,
			want:    0,
		},
		{
			name:    "all zero",
			ranking: ranking.Ranking{0, 0, 0, 0},
			want:    0,
		},
		{
			name:    "all zero with k",
			ranking: ranking.Ranking{0, 0, 0, 0},
			opts:    []NDCGOption{AtK(2)},
			want:    0,
		},
		{
			name:    "graded at full length",
			ranking: graded,
			opts:    []NDCGOption{AtK(6)},
			want:    gradedDCG / gradedIDCG,
		},
		{
			name:    "graded without k",
			ranking: graded,
			want:    0.960808194336,
		},
		{
			name:    "graded at k=3",
			ranking: graded,
			opts:    []NDCGOption{AtK(3)},
			want:    0.977781361631,
		},
		{
			name:    "reversed order",
			ranking: ranking.Ranking{1, 2, 3},
			want:    0.789998004246,
		},
		{
			name:    "zero window with mass below",
			ranking: ranking.Ranking{0, 0, 3, 2},
			opts:    []NDCGOption{AtK(2)},
			want:    0,
		},
		{
			name:    "single relevant at top",
			ranking: ranking.Ranking{2, 0, 0},
			want:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizedDCG(tt.ranking, tt.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalizedDCG_SortedDescendingIsExactlyOne(t *testing.T) {
	r := ranking.Ranking{4, 3, 3, 2, 1, 0.5, 0, 0}

	got, err := NormalizedDCG(r, AtK(len(r)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestNormalizedDCG_KClampedToLength(t *testing.T) {
	r := ranking.Ranking{0, 1, 3, 0, 2}

	full, err := NormalizedDCG(r)
	require.NoError(t, err)
	clamped, err := NormalizedDCG(r, AtK(len(r)+1000))
	require.NoError(t, err)

	assert.Equal(t, full, clamped)
}

func TestNormalizedDCG_NonPositiveK(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		got, err := NormalizedDCG(ranking.Ranking{1, 2}, AtK(k))
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "k must be positive")
		assert.Zero(t, got)
	}
}

func TestNormalizedDCG_NonPositiveKOnZeroRanking(t *testing.T) {
	_, err := NormalizedDCG(ranking.Ranking{0, 0}, AtK(0))
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestNormalizedDCG_InvalidValues(t *testing.T) {
	_, err := NormalizedDCG(ranking.Ranking{1, math.NaN()})
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = NormalizedDCG(ranking.Ranking{-3, 1})
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestScores_OverflowIsInvalidInput(t *testing.T) {
	huge := ranking.Ranking{math.MaxFloat64, math.MaxFloat64}

	_, err := AveragePrecision(huge)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "overflows")

	_, err = NormalizedDCG(huge)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidInput(err))

	// Large but representable values still score.
	score, err := NormalizedDCG(ranking.Ranking{1e300, 0, 1e300})
	require.NoError(t, err)
	assert.Less(t, score, 1.0)
}

func TestNormalizedDCG_PromotingHigherItemNeverDecreases(t *testing.T) {
	base := ranking.Ranking{1, 0, 3, 2, 0, 1}

	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			if base[j] <= base[i] {
				continue
			}
			swapped := make(ranking.Ranking, len(base))
			copy(swapped, base)
			swapped[i], swapped[j] = swapped[j], swapped[i]

			for k := 1; k <= len(base); k++ {
				before, err := NormalizedDCG(base, AtK(k))
				require.NoError(t, err)
				after, err := NormalizedDCG(swapped, AtK(k))
				require.NoError(t, err)
				assert.GreaterOrEqual(t, after, before-1e-12, "swap %d<->%d at k=%d", i, j, k)
			}
		}
	}
}

func TestScores_AreBoundedForBinaryRankings(t *testing.T) {
	rankings := []ranking.Ranking{
		{1, 0, 0, 1},
		{0, 0, 0, 1},
		{1, 1, 0, 1, 0, 0, 1},
	}

	for _, r := range rankings {
		ap, err := AveragePrecision(r)
		require.NoError(t, err)
		ndcg, err := NormalizedDCG(r)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, ap, 0.0)
		assert.LessOrEqual(t, ap, 1.0)
		assert.GreaterOrEqual(t, ndcg, 0.0)
		assert.LessOrEqual(t, ndcg, 1.0)
	}
}

func TestScores_InputUntouchedAndRepeatable(t *testing.T) {
	r := ranking.Ranking{2, 0, 3, 1, 0}
	snapshot := append(ranking.Ranking(nil), r...)

	ap1, _ := AveragePrecision(r)
	ap2, _ := AveragePrecision(r)
	ndcg1, _ := NormalizedDCG(r, AtK(3))
	ndcg2, _ := NormalizedDCG(r, AtK(3))

	assert.Equal(t, math.Float64bits(ap1), math.Float64bits(ap2))
	assert.Equal(t, math.Float64bits(ndcg1), math.Float64bits(ndcg2))
	assert.Equal(t, snapshot, r)
}

func TestScores_ConcurrentCallsAgree(t *testing.T) {
	r := ranking.Ranking{3, 2, 3, 0, 1, 2}
	want, err := NormalizedDCG(r)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = NormalizedDCG(r)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEvaluate(t *testing.T) {
	r := ranking.Ranking{3, 2, 1}

	scores, err := Evaluate(r, []int{1, 3, 10})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scores.NDCG, 1e-9)
	assert.InDelta(t, 1.0, scores.NDCGAtK[1], 1e-9)
	assert.InDelta(t, 1.0, scores.NDCGAtK[3], 1e-9)
	assert.InDelta(t, 1.0, scores.NDCGAtK[10], 1e-9)
	// 3/1, 5/2, 6/3
	assert.InDelta(t, (3.0+2.5+2.0)/3.0, scores.AP, 1e-9)
	assert.Len(t, scores.NDCGAtK, 3)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate(ranking.Ranking{1, 0}, []int{3, 0})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "ndcg@0")

	_, err = Evaluate(ranking.Ranking{math.Inf(1)}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "average precision")
}
