// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/trustindexhq/trustindex/internal/http/types"
	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

// GateResponse is returned while an org run is still below its respondent
// minimum, exposing the counts but no scores.
type GateResponse struct {
	Respondents int `json:"respondents"`
	Minimum     int `json:"minimum"`
}

type API struct {
	service ServiceInterface
	history HistoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	history HistoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		history: history,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterAuthedEndpoints mounts the dashboard routes.
func (a *API) RegisterAuthedEndpoints(router chi.Router) {
	router.Get("/api/v0/runs/{runID}/score", a.getDashboard)
	router.Get("/api/v0/history", a.getHistory)
}

func (a *API) getDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "scoring.API.getDashboard")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	dashboard, err := a.service.GetDashboard(ctx, userID, chi.URLParam(r, "runID"))
	if err != nil {
		var gate *BelowThresholdError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
		case errors.As(err, &gate):
			httptypes.WriteResponse(w, http.StatusConflict, GateResponse{
				Respondents: gate.Respondents,
				Minimum:     gate.Minimum,
			})
		default:
			a.logger.Errorf("failed to load dashboard: %v", err)
			httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to load dashboard")
		}
		return
	}

	// A failed history write never blocks the dashboard.
	if err := a.history.Record(ctx, userID, dashboard.Run.ID, dashboard.Run.Title); err != nil {
		a.logger.Warnf("failed to record run view: %v", err)
	}

	httptypes.WriteResponse(w, http.StatusOK, dashboard)
}

func (a *API) getHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "scoring.API.getHistory")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	entries, err := a.history.List(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to list history: %v", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to list history")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, entries)
}
