package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

// ScoreMetrics records how often each scoring operation runs and how long it takes.
type ScoreMetrics struct {
	scoresTotal   *prometheus.CounterVec
	scoreDuration *prometheus.HistogramVec
}

// NewScoreMetrics registers the scoring collectors with reg.
func NewScoreMetrics(reg prometheus.Registerer) *ScoreMetrics {
	factory := promauto.With(reg)

	return &ScoreMetrics{
		scoresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rankeval_scores_total",
				Help: "Total number of scoring requests by metric and outcome.",
			},
			[]string{"metric", "status"},
		),
		scoreDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rankeval_score_duration_seconds",
				Help:    "Time spent computing a score.",
				Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1},
			},
			[]string{"metric"},
		),
	}
}

func (m *ScoreMetrics) Observe(metric string, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusInvalid
	}
	m.scoresTotal.WithLabelValues(metric, status).Inc()
	m.scoreDuration.WithLabelValues(metric).Observe(d.Seconds())
}

func (m *ScoreMetrics) Counter(metric, status string) prometheus.Counter {
	return m.scoresTotal.WithLabelValues(metric, status)
}
