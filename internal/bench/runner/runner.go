package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/metrics"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/suite"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Runner{config: cfg}
}

// Run scores every suite entry. An entry that fails validation records its
// error and does not stop the others; only ctx cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, s *suite.TestSuite) (*SuiteResult, error) {
	kValues := s.KValues
	if len(r.config.KValues) > 0 {
		kValues = r.config.KValues
	}

	sr := &SuiteResult{
		SuiteName: s.Name,
		KValues:   kValues,
		Entries:   make([]EntryResult, len(s.Entries)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)

	for i := range s.Entries {
		entry := &s.Entries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sr.Entries[i] = scoreEntry(entry, kValues)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	slog.Info("Suite scored", "suite", s.Name, "entries", len(sr.Entries), "errors", sr.ErrorCount())
	return sr, nil
}

func scoreEntry(entry *suite.Entry, kValues []int) EntryResult {
	r := entry.Ranking()
	er := EntryResult{EntryID: entry.ID, Ranking: r}

	scores, err := metrics.Evaluate(r, kValues)
	if err != nil {
		er.Error = fmt.Errorf("score ranking %q: %w", entry.ID, err)
		slog.Warn("ranking failed", "ranking", entry.ID, "error", err)
		return er
	}

	er.Scores = scores
	slog.Debug("ranking scored", "ranking", entry.ID, "ap", scores.AP, "ndcg", scores.NDCG)
	return er
}
