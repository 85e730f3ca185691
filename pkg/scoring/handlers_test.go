// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface, *MockHistoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)
	mockHistory := NewMockHistoryInterface(ctrl)
	api := NewAPI(
		mockService,
		mockHistory,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterAuthedEndpoints(mux)
	return mux, mockService, mockHistory
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
}

func TestGetDashboardRecordsHistory(t *testing.T) {
	mux, mockService, mockHistory := newTestAPI(t)

	mockService.EXPECT().
		GetDashboard(gomock.Any(), "user-1", "run-1").
		Return(&Dashboard{
			Run:   &types.SurveyRun{ID: "run-1", Title: "Q3 Pulse"},
			Score: &types.RunScore{RunID: "run-1", TrustIndex: 62.5, Respondents: 7},
		}, nil)
	mockHistory.EXPECT().
		Record(gomock.Any(), "user-1", "run-1", "Q3 Pulse").
		Return(nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v0/runs/run-1/score"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestGetDashboardGateResponse(t *testing.T) {
	mux, mockService, _ := newTestAPI(t)

	mockService.EXPECT().
		GetDashboard(gomock.Any(), "user-1", "run-1").
		Return(nil, &BelowThresholdError{Respondents: 3, Minimum: 5})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v0/runs/run-1/score"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}

	var envelope struct {
		Data GateResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if envelope.Data.Respondents != 3 || envelope.Data.Minimum != 5 {
		t.Errorf("expected 3 of 5 in gate response, got %+v", envelope.Data)
	}
}

func TestGetHistory(t *testing.T) {
	mux, _, mockHistory := newTestAPI(t)

	mockHistory.EXPECT().
		List(gomock.Any(), "user-1").
		Return([]types.RecentRun{{RunID: "run-1", Title: "Q3 Pulse"}}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v0/history"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
