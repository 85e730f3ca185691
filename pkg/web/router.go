// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/trustindexhq/trustindex/internal/db"
	"github.com/trustindexhq/trustindex/internal/history"
	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/pkg/accounts"
	"github.com/trustindexhq/trustindex/pkg/assessment"
	"github.com/trustindexhq/trustindex/pkg/authentication"
	"github.com/trustindexhq/trustindex/pkg/export"
	"github.com/trustindexhq/trustindex/pkg/metrics"
	"github.com/trustindexhq/trustindex/pkg/scoring"
	"github.com/trustindexhq/trustindex/pkg/status"
	"github.com/trustindexhq/trustindex/pkg/survey"
)

// Config carries the request-path settings the router wires into its APIs.
type Config struct {
	JWTSecret          string
	SessionLifetime    time.Duration
	MinRespondents     int
	ScoreCacheTTL      time.Duration
	CORSAllowedOrigins []string
}

// NewRouter assembles the full HTTP API. It returns the handler and the
// scoring service so the caller can run the background score refresher
// against the same cache.
func NewRouter(
	cfg *Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	redisClient *redis.Client,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (http.Handler, *scoring.Service) {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
		db.TransactionMiddleware(dbClient, logger),
	)
	router.Use(middlewares...)

	jwtManager := authentication.NewJWTManager(cfg.JWTSecret, cfg.SessionLifetime, tracer, monitor, logger)
	scoreCache := scoring.NewCache(redisClient, cfg.ScoreCacheTTL, tracer, logger)
	historyStore := history.NewStore(redisClient, tracer, logger)

	accountsAPI := accounts.NewAPI(
		accounts.NewService(s, jwtManager, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	surveyAPI := survey.NewAPI(
		survey.NewService(s, scoreCache, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	scoringService := scoring.NewService(s, scoreCache, cfg.MinRespondents, tracer, monitor, logger)
	scoringAPI := scoring.NewAPI(scoringService, historyStore, tracer, monitor, logger)
	assessmentAPI := assessment.NewAPI(
		assessment.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	exportAPI := export.NewAPI(
		export.NewService(s, cfg.MinRespondents, tracer, monitor, logger),
		tracer, monitor, logger,
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, historyStore, tracer, monitor, logger).RegisterEndpoints(router)

	// Public surface: registration, login, and the tokenized respondent form.
	accountsAPI.RegisterEndpoints(router)
	surveyAPI.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(jwtManager, tracer, monitor, logger).Authenticate())

		accountsAPI.RegisterAuthedEndpoints(r)
		surveyAPI.RegisterAuthedEndpoints(r)
		scoringAPI.RegisterAuthedEndpoints(r)
		assessmentAPI.RegisterAuthedEndpoints(r)
		exportAPI.RegisterAuthedEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router), scoringService
}
