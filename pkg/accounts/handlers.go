// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package accounts

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
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=200"`
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

// RegisterEndpoints mounts the unauthenticated auth routes.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/auth/register", a.register)
	mux.Post("/api/v0/auth/login", a.login)
}

// RegisterAuthedEndpoints mounts the routes that require a session.
func (a *API) RegisterAuthedEndpoints(router chi.Router) {
	router.Get("/api/v0/profile", a.getProfile)
	router.Patch("/api/v0/profile", a.updateProfile)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httptypes.WriteErrorResponse(w, http.StatusConflict, "email already registered")
			return
		}
		a.logger.Errorf("failed to register user: %v", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to register")
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, result)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		a.logger.Errorf("failed to log in user: %v", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, result)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.getProfile")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	user, err := a.service.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteErrorResponse(w, http.StatusNotFound, "profile not found")
			return
		}
		a.logger.Errorf("failed to get profile: %v", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, user)
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.updateProfile")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	update := &types.User{ID: userID}
	var paths []string
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}

	user, err := a.service.UpdateProfile(ctx, update, paths)
	if err != nil {
		a.logger.Errorf("failed to update profile: %v", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, user)
}
