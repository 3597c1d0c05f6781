package report

import (
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
)

func Generate(sr *runner.SuiteResult, version string) *Report {
	r := &Report{
		Meta: ReportMeta{
			Version:     version,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Suite:   sr.SuiteName,
		KValues: sr.KValues,
		Entries: make([]Entry, 0, len(sr.Entries)),
	}

	for _, er := range sr.Entries {
		entry := Entry{
			RankingID: er.EntryID,
			Length:    len(er.Ranking),
		}
		if er.Error != nil {
			entry.Error = er.Error.Error()
		} else {
			entry.AP = er.Scores.AP
			entry.NDCG = er.Scores.NDCG
			entry.NDCGAtK = er.Scores.NDCGAtK
		}
		r.Entries = append(r.Entries, entry)
	}

	return r
}
