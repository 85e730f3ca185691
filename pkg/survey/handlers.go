// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

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

type CreateRunRequest struct {
	Mode  string `json:"mode" validate:"required,oneof=explorer org"`
	Title string `json:"title" validate:"required,max=200"`
}

type UpdateRunStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=live closed"`
}

type SubmitRequest struct {
	Answers []Answer `json:"answers" validate:"required,min=1,dive"`
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

// RegisterEndpoints mounts the public respondent routes. No session is
// required; the invite token is the credential.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/respond/{token}", a.getRespondentForm)
	mux.Post("/api/v0/respond/{token}", a.submitResponses)
}

// RegisterAuthedEndpoints mounts the run management routes.
func (a *API) RegisterAuthedEndpoints(router chi.Router) {
	router.Post("/api/v0/runs", a.createRun)
	router.Get("/api/v0/runs", a.listRuns)
	router.Get("/api/v0/runs/{runID}", a.getRun)
	router.Patch("/api/v0/runs/{runID}/status", a.updateRunStatus)
	router.Delete("/api/v0/runs/{runID}", a.deleteRun)
	router.Post("/api/v0/runs/{runID}/invites", a.createInvites)
	router.Get("/api/v0/runs/{runID}/invites", a.listInvites)
	router.Post("/api/v0/runs/{runID}/self", a.submitExplorer)
	router.Get("/api/v0/questions", a.listQuestions)
}

func (a *API) createRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.createRun")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := a.service.CreateRun(ctx, userID, req.Mode, req.Title)
	if err != nil {
		a.writeServiceError(w, err, "failed to create run")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, run)
}

func (a *API) listRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.listRuns")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	runs, err := a.service.ListRuns(ctx, userID)
	if err != nil {
		a.writeServiceError(w, err, "failed to list runs")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, runs)
}

func (a *API) getRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.getRun")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	run, err := a.service.GetRun(ctx, userID, chi.URLParam(r, "runID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to get run")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, run)
}

func (a *API) updateRunStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.updateRunStatus")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateRunStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := a.service.UpdateRunStatus(ctx, userID, chi.URLParam(r, "runID"), req.Status)
	if err != nil {
		a.writeServiceError(w, err, "failed to update run status")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, run)
}

func (a *API) deleteRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.deleteRun")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.DeleteRun(ctx, userID, chi.URLParam(r, "runID")); err != nil {
		a.writeServiceError(w, err, "failed to delete run")
		return
	}

	httptypes.WriteResponse(w, http.StatusNoContent, nil)
}

func (a *API) createInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.createInvites")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req InviteBatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	invites, err := a.service.CreateInvites(ctx, userID, chi.URLParam(r, "runID"), req)
	if err != nil {
		a.writeServiceError(w, err, "failed to create invites")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, invites)
}

func (a *API) listInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.listInvites")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := a.service.ListInvites(ctx, userID, chi.URLParam(r, "runID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to list invites")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, list)
}

func (a *API) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.listQuestions")
	defer span.End()

	questions, err := a.service.ListQuestions(ctx)
	if err != nil {
		a.writeServiceError(w, err, "failed to list questions")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, questions)
}

func (a *API) getRespondentForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.getRespondentForm")
	defer span.End()

	form, err := a.service.GetRespondentForm(ctx, chi.URLParam(r, "token"))
	if err != nil {
		a.writeServiceError(w, err, "failed to load survey")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, form)
}

func (a *API) submitResponses(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.submitResponses")
	defer span.End()

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.SubmitResponses(ctx, chi.URLParam(r, "token"), req.Answers); err != nil {
		a.writeServiceError(w, err, "failed to submit responses")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, nil)
}

func (a *API) submitExplorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "survey.API.submitExplorer")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.SubmitExplorer(ctx, userID, chi.URLParam(r, "runID"), req.Answers); err != nil {
		a.writeServiceError(w, err, "failed to submit responses")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, nil)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrPlanLimit):
		httptypes.WriteErrorResponse(w, http.StatusForbidden, "plan limit reached")
	case errors.Is(err, ErrInvalidMode), errors.Is(err, ErrInvalidAnswers):
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrNotOrgRun),
		errors.Is(err, ErrNotExplorerRun), errors.Is(err, ErrRunNotLive):
		httptypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInviteUsed):
		httptypes.WriteErrorResponse(w, http.StatusGone, "invite already used")
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
