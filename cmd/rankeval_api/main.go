// Package main Rank Eval API
// @title Rank Eval API
// @version 1.0
// @description Average precision and NDCG scoring for ranked relevance lists
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/rank-eval/internal/api/router"
	"github.com/DjordjeVuckovic/rank-eval/internal/api/server"
	mw "github.com/DjordjeVuckovic/rank-eval/internal/middleware"
	pkgserver "github.com/DjordjeVuckovic/rank-eval/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	s := server.New(cfg, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics().
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Rank Eval API is running")
	})

	scoreRouter := router.NewScoreRouter(s.Echo,
		router.WithMaxRankingLength(cfg.MaxRankingLength),
		router.WithScoreMetrics(mw.NewScoreMetrics(s.Registry)),
	)
	scoreRouter.Bind()

	slog.Info("Starting server", "port", cfg.Port, "max_ranking_length", cfg.MaxRankingLength)
	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Server shut down")
}
