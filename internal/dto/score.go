package dto

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/metrics"
	"github.com/google/uuid"
)

type AveragePrecisionRequest struct {
	Ranking []float64 `json:"ranking" validate:"required"`
}

type NDCGRequest struct {
	Ranking []float64 `json:"ranking" validate:"required"`
	// K limits scoring to the top K positions; the full ranking is used when omitted.
	K *int `json:"k,omitempty"`
}

type EvaluateRequest struct {
	Ranking []float64 `json:"ranking" validate:"required"`
	KValues []int     `json:"k_values,omitempty"`
}

type ScoreResponse struct {
	ID     uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Metric string    `json:"metric"`
	Score  float64   `json:"score"`
	K      *int      `json:"k,omitempty"`
}

type EvaluateResponse struct {
	ID     uuid.UUID        `json:"id" swaggertype:"string" format:"uuid"`
	Scores metrics.ScoreSet `json:"scores"`
}
