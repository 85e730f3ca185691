// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/trustindexhq/trustindex/internal/http/types"
	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/pkg/authentication"
	"github.com/trustindexhq/trustindex/pkg/scoring"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterAuthedEndpoints mounts the CSV download routes.
func (a *API) RegisterAuthedEndpoints(router chi.Router) {
	router.Get("/api/v0/runs/{runID}/export/responses", a.exportResponses)
	router.Get("/api/v0/runs/{runID}/export/summary", a.exportSummary)
	router.Get("/api/v0/assessments/{assessmentID}/export", a.exportAssessment)
}

func (a *API) exportResponses(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "export.API.exportResponses")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	a.serveCSV(ctx, w, fmt.Sprintf("responses-%s.csv", runID), func(ownerID string, buf *bytes.Buffer) error {
		return a.service.WriteResponses(ctx, ownerID, runID, buf)
	})
}

func (a *API) exportSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "export.API.exportSummary")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	a.serveCSV(ctx, w, fmt.Sprintf("summary-%s.csv", runID), func(ownerID string, buf *bytes.Buffer) error {
		return a.service.WriteSummary(ctx, ownerID, runID, buf)
	})
}

func (a *API) exportAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "export.API.exportAssessment")
	defer span.End()

	assessmentID := chi.URLParam(r, "assessmentID")
	a.serveCSV(ctx, w, fmt.Sprintf("assessment-%s.csv", assessmentID), func(ownerID string, buf *bytes.Buffer) error {
		return a.service.WriteAssessment(ctx, ownerID, assessmentID, buf)
	})
}

// serveCSV renders into a buffer first so failures can still produce a JSON
// error instead of a truncated download.
func (a *API) serveCSV(ctx context.Context, w http.ResponseWriter, filename string, write func(ownerID string, buf *bytes.Buffer) error) {
	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var buf bytes.Buffer
	if err := write(userID, &buf); err != nil {
		var gate *scoring.BelowThresholdError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
		case errors.Is(err, ErrPlanGated):
			httptypes.WriteErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.As(err, &gate):
			httptypes.WriteErrorResponse(w, http.StatusConflict, gate.Error())
		default:
			a.logger.Errorf("failed to export %s: %v", filename, err)
			httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to export")
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
