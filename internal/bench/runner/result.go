package runner

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/metrics"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
)

type EntryResult struct {
	EntryID string
	Ranking ranking.Ranking
	Scores  metrics.ScoreSet
	Error   error
}

type SuiteResult struct {
	SuiteName string
	KValues   []int
	Entries   []EntryResult // suite order
}

func (sr *SuiteResult) ErrorCount() int {
	var n int
	for _, e := range sr.Entries {
		if e.Error != nil {
			n++
		}
	}
	return n
}
