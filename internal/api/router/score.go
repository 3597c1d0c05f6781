package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/metrics"
	"github.com/DjordjeVuckovic/rank-eval/internal/dto"
	mw "github.com/DjordjeVuckovic/rank-eval/internal/middleware"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	MetricAveragePrecision = "average_precision"
	MetricNDCG             = "ndcg"
	MetricEvaluate         = "evaluate"
)

type ScoreRouter struct {
	e            *echo.Echo
	maxRankLen   int
	scoreMetrics *mw.ScoreMetrics
}

type ScoreRouterOption func(*ScoreRouter)

// WithMaxRankingLength rejects request rankings longer than n.
func WithMaxRankingLength(n int) ScoreRouterOption {
	return func(r *ScoreRouter) {
		r.maxRankLen = n
	}
}

func WithScoreMetrics(m *mw.ScoreMetrics) ScoreRouterOption {
	return func(r *ScoreRouter) {
		r.scoreMetrics = m
	}
}

func NewScoreRouter(e *echo.Echo, opts ...ScoreRouterOption) *ScoreRouter {
	r := &ScoreRouter{e: e}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ScoreRouter) Bind() {
	g := r.e.Group("/v1/metrics")
	g.POST("/average-precision", r.averagePrecisionHandler)
	g.POST("/ndcg", r.ndcgHandler)
	g.POST("/evaluate", r.evaluateHandler)
}

// averagePrecisionHandler godoc
// @Summary Average precision of a ranking
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body dto.AveragePrecisionRequest true "Relevance values in ranked order"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} map[string]string
// @Router /v1/metrics/average-precision [post]
func (r *ScoreRouter) averagePrecisionHandler(c echo.Context) error {
	var req dto.AveragePrecisionRequest
	if err := r.bind(c, &req); err != nil {
		return err
	}
	rk, err := r.toRanking(req.Ranking)
	if err != nil {
		return err
	}

	start := time.Now()
	score, err := metrics.AveragePrecision(rk)
	r.observe(MetricAveragePrecision, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ScoreResponse{
		ID:     requestID(c),
		Metric: MetricAveragePrecision,
		Score:  score,
	})
}

// ndcgHandler godoc
// @Summary Normalized discounted cumulative gain of a ranking
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body dto.NDCGRequest true "Relevance values in ranked order and optional cutoff"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} map[string]string
// @Router /v1/metrics/ndcg [post]
func (r *ScoreRouter) ndcgHandler(c echo.Context) error {
	var req dto.NDCGRequest
	if err := r.bind(c, &req); err != nil {
		return err
	}
	rk, err := r.toRanking(req.Ranking)
	if err != nil {
		return err
	}

	var opts []metrics.NDCGOption
	if req.K != nil {
		opts = append(opts, metrics.AtK(*req.K))
	}

	start := time.Now()
	score, err := metrics.NormalizedDCG(rk, opts...)
	r.observe(MetricNDCG, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ScoreResponse{
		ID:     requestID(c),
		Metric: MetricNDCG,
		Score:  score,
		K:      req.K,
	})
}

// evaluateHandler godoc
// @Summary All scores of a single ranking
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Relevance values in ranked order and NDCG cutoffs"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Router /v1/metrics/evaluate [post]
func (r *ScoreRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := r.bind(c, &req); err != nil {
		return err
	}
	rk, err := r.toRanking(req.Ranking)
	if err != nil {
		return err
	}

	start := time.Now()
	scores, err := metrics.Evaluate(rk, req.KValues)
	r.observe(MetricEvaluate, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:     requestID(c),
		Scores: scores,
	})
}

func (r *ScoreRouter) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewInvalidInput("request body must be a JSON object with a numeric ranking")
	}
	return c.Validate(req)
}

func (r *ScoreRouter) toRanking(values []float64) (ranking.Ranking, error) {
	if r.maxRankLen > 0 && len(values) > r.maxRankLen {
		return nil, apperr.NewInvalidInput(fmt.Sprintf("ranking has %d values, limit is %d", len(values), r.maxRankLen))
	}
	return ranking.Ranking(values), nil
}

func (r *ScoreRouter) observe(metric string, start time.Time, err error) {
	if r.scoreMetrics != nil {
		r.scoreMetrics.Observe(metric, time.Since(start), err)
	}
}

// requestID reuses the X-Request-ID set by the request ID middleware when it
// is a UUID, and mints a fresh one otherwise.
func requestID(c echo.Context) uuid.UUID {
	if id, err := uuid.Parse(c.Response().Header().Get(echo.HeaderXRequestID)); err == nil {
		return id
	}
	return uuid.New()
}
