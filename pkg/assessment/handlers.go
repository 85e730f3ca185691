// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/trustindexhq/trustindex/internal/http/types"
	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

type CreateSystemRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type SubmitAnswerRequest struct {
	Level    int    `json:"level" validate:"required,min=1,max=5"`
	Evidence string `json:"evidence" validate:"omitempty,url,max=500"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

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
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterAuthedEndpoints mounts the system and assessment routes.
func (a *API) RegisterAuthedEndpoints(router chi.Router) {
	router.Post("/api/v0/systems", a.createSystem)
	router.Get("/api/v0/systems", a.listSystems)
	router.Get("/api/v0/systems/{systemID}", a.getSystem)
	router.Delete("/api/v0/systems/{systemID}", a.deleteSystem)
	router.Post("/api/v0/systems/{systemID}/assessments", a.startAssessment)
	router.Get("/api/v0/systems/{systemID}/assessments", a.listAssessments)
	router.Get("/api/v0/assessments/{assessmentID}", a.getAssessment)
	router.Put("/api/v0/assessments/{assessmentID}/answers/{areaID}", a.submitAnswer)
	router.Get("/api/v0/assessment-areas", a.listAreas)
}

func (a *API) createSystem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.createSystem")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	system, err := a.service.CreateSystem(ctx, userID, req.Name)
	if err != nil {
		a.writeServiceError(w, err, "failed to create system")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, system)
}

func (a *API) listSystems(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.listSystems")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	systems, err := a.service.ListSystems(ctx, userID)
	if err != nil {
		a.writeServiceError(w, err, "failed to list systems")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, systems)
}

func (a *API) getSystem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.getSystem")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	system, err := a.service.GetSystem(ctx, userID, chi.URLParam(r, "systemID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to get system")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, system)
}

func (a *API) deleteSystem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.deleteSystem")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.DeleteSystem(ctx, userID, chi.URLParam(r, "systemID")); err != nil {
		a.writeServiceError(w, err, "failed to delete system")
		return
	}

	httptypes.WriteResponse(w, http.StatusNoContent, nil)
}

func (a *API) startAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.startAssessment")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	run, err := a.service.StartAssessment(ctx, userID, chi.URLParam(r, "systemID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to start assessment")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, run)
}

func (a *API) listAssessments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.listAssessments")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	runs, err := a.service.ListAssessments(ctx, userID, chi.URLParam(r, "systemID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to list assessments")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, runs)
}

func (a *API) getAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.getAssessment")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	detail, err := a.service.GetAssessment(ctx, userID, chi.URLParam(r, "assessmentID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to get assessment")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, detail)
}

func (a *API) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assessment.API.submitAnswer")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := a.service.SubmitAnswer(ctx, userID,
		chi.URLParam(r, "assessmentID"), chi.URLParam(r, "areaID"), req.Level, req.Evidence)
	if err != nil {
		a.writeServiceError(w, err, "failed to submit answer")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, detail)
}

func (a *API) listAreas(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "assessment.API.listAreas")
	defer span.End()

	httptypes.WriteResponse(w, http.StatusOK, Areas)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrPlanLimit):
		httptypes.WriteErrorResponse(w, http.StatusForbidden, "plan limit reached")
	case errors.Is(err, ErrUnknownArea), errors.Is(err, ErrInvalidLevel):
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCompleted):
		httptypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
