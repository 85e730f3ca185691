// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/tracing"
)

func newTestManager() *JWTManager {
	return NewJWTManager(
		"test-secret",
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestAuthenticateValidToken(t *testing.T) {
	manager := newTestManager()
	token, err := manager.SignToken("user-1", "owner@example.com", "pro")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	mdw := NewMiddleware(manager, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var gotUserID string
	handler := mdw.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/runs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("expected user ID user-1 in context, got %q", gotUserID)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	manager := newTestManager()
	mdw := NewMiddleware(manager, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	handler := mdw.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v0/runs", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	manager := NewJWTManager(
		"test-secret",
		-time.Minute,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	token, err := manager.SignToken("user-1", "owner@example.com", "free")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.VerifyToken(t.Context(), token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := newTestManager().SignToken("user-1", "owner@example.com", "free")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	other := NewJWTManager(
		"different-secret",
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	if _, err := other.VerifyToken(t.Context(), token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}
