package ranking

import (
	"math"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ranking Ranking
		wantErr string
	}{
		{name: "empty", ranking: nil},
		{name: "binary", ranking: Ranking{1, 0, 1}},
		{name: "graded", ranking: Ranking{3, 2, 0.5, 0}},
		{name: "nan", ranking: Ranking{1, math.NaN()}, wantErr: "position 2 is NaN"},
		{name: "positive inf", ranking: Ranking{math.Inf(1)}, wantErr: "position 1 is infinite"},
		{name: "negative inf", ranking: Ranking{0, 0, math.Inf(-1)}, wantErr: "position 3 is infinite"},
		{name: "negative", ranking: Ranking{1, -2}, wantErr: "position 2 is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ranking.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsInvalidInput(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSum(t *testing.T) {
	assert.Zero(t, Ranking(nil).Sum())
	assert.InDelta(t, 11.0, Ranking{3, 2, 3, 0, 1, 2}.Sum(), 1e-12)
}

func TestIdeal(t *testing.T) {
	r := Ranking{3, 2, 3, 0, 1, 2}

	ideal := r.Ideal()

	assert.Equal(t, Ranking{3, 3, 2, 2, 1, 0}, ideal)
	assert.Equal(t, Ranking{3, 2, 3, 0, 1, 2}, r, "input must not be reordered")
	assert.Empty(t, Ranking{}.Ideal())
}

func TestParse(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		r, err := Parse([]string{"1", " 0 ", "2.5"})
		require.NoError(t, err)
		assert.Equal(t, Ranking{1, 0, 2.5}, r)
	})

	t.Run("empty input", func(t *testing.T) {
		r, err := Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, r)
	})

	t.Run("non numeric", func(t *testing.T) {
		_, err := Parse([]string{"1", "high"})
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidInput(err))
		assert.Contains(t, err.Error(), `position 2 is not a number: "high"`)
	})

	t.Run("nan literal", func(t *testing.T) {
		_, err := Parse([]string{"NaN"})
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Parse([]string{"-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestFromJudgments(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	judgments := map[uuid.UUID]int{
		ids[0]: GradeHighly,
		ids[2]: GradeMarginally,
		ids[1]: GradeRelevant,
		ids[3]: GradeNotRelevant,
	}

	r := FromJudgments([]uuid.UUID{ids[2], ids[1], ids[0], ids[3]}, judgments)

	assert.Equal(t, Ranking{1, 2, 3, 0}, r)
	assert.Empty(t, FromJudgments(nil, judgments))
}
