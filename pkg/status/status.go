// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package status serves liveness and dependency health endpoints.
package status

import (
	"context"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/trustindexhq/trustindex/internal/db"
	httptypes "github.com/trustindexhq/trustindex/internal/http/types"
	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/version"
)

// PingerInterface is anything that can confirm a dependency is reachable.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

type Health struct {
	Status  string          `json:"status"`
	Version string          `json:"version"`
	Checks  map[string]bool `json:"checks,omitempty"`
}

type API struct {
	dbClient db.DBClientInterface
	redis    PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	dbClient db.DBClientInterface,
	redis PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		dbClient: dbClient,
		redis:    redis,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/deep", a.deepCheck)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	httptypes.WriteResponse(w, http.StatusOK, Health{Status: "ok", Version: version.Version})
}

// deepCheck pings every dependency and reports availability to the monitor.
func (a *API) deepCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.deepCheck")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	checks := map[string]bool{
		"postgres": a.check(ctx, "postgres", a.dbClient.Ping),
		"redis":    a.check(ctx, "redis", a.redis.Ping),
	}

	health := Health{Status: "ok", Version: version.Version, Checks: checks}
	status := http.StatusOK
	for _, ok := range checks {
		if !ok {
			health.Status = "degraded"
			status = http.StatusServiceUnavailable
			break
		}
	}

	httptypes.WriteResponse(w, status, health)
}

func (a *API) check(ctx context.Context, name string, ping func(context.Context) error) bool {
	err := ping(ctx)
	available := 1.0
	if err != nil {
		a.logger.Warnf("%s health check failed: %v", name, err)
		available = 0
	}
	if err := a.monitor.SetDependencyAvailability(map[string]string{"dependency": name}, available); err != nil {
		a.logger.Warnf("failed to set availability metric: %v", err)
	}
	return available == 1
}
