package judgment

import (
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/suite"
)

// MergeIntoSuite replaces the judgments of every ranked-docs entry that the
// file grades. Ungraded docs are dropped, so they score as not relevant.
// Entries given as plain relevance values are left alone. s is not modified.
func MergeIntoSuite(jf *JudgmentFile, s *suite.TestSuite) *suite.TestSuite {
	judgeMap := make(map[string][]GradedDoc, len(jf.Rankings))
	for _, entry := range jf.Rankings {
		judgeMap[entry.RankingID] = entry.Docs
	}

	merged := *s
	merged.Entries = make([]suite.Entry, len(s.Entries))
	copy(merged.Entries, s.Entries)

	for i, e := range merged.Entries {
		docs, ok := judgeMap[e.ID]
		if !ok {
			continue
		}
		if e.Ranked == nil {
			slog.Warn("judgments ignored for ranking without ranked docs", "ranking", e.ID)
			continue
		}

		judgments := make([]suite.RelevanceJudgment, 0, len(docs))
		for _, d := range docs {
			if d.Grade > Ungraded {
				judgments = append(judgments, suite.RelevanceJudgment{
					DocID:     d.DocID,
					Relevance: d.Grade,
				})
			}
		}
		merged.Entries[i].Judgments = judgments
	}

	return &merged
}
