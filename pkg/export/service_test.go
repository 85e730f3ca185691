// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/scoring"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	service := NewService(
		mockStorage,
		5,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage
}

func expectExportableRun(mockStorage *MockStorageInterface) {
	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanPro}, nil)
	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-1").Return(6, nil)
}

func TestWriteResponses(t *testing.T) {
	service, mockStorage := newTestService(t)

	created := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	expectExportableRun(mockStorage)
	mockStorage.EXPECT().ListQuestions(gomock.Any()).Return([]*types.Question{
		{ID: "q01", Dimension: "competence", Position: 1},
	}, nil)
	mockStorage.EXPECT().ListResponsesByRun(gomock.Any(), "run-1").
		Return([]*types.Response{
			{RunID: "run-1", InviteToken: "tok-a", QuestionID: "q01", Value: 4, CreatedAt: created},
		}, nil)

	var buf bytes.Buffer
	if err := service.WriteResponses(t.Context(), "user-1", "run-1", &buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	want := []string{"run-1", "tok-a", "q01", "competence", "4", "2026-08-25T10:00:00Z"}
	for i, cell := range want {
		if records[1][i] != cell {
			t.Errorf("column %d: expected %q, got %q", i, cell, records[1][i])
		}
	}
}

func TestWriteSummary(t *testing.T) {
	service, mockStorage := newTestService(t)

	expectExportableRun(mockStorage)
	mockStorage.EXPECT().GetDimensionScores(gomock.Any(), "run-1").
		Return([]types.DimensionScore{
			{Dimension: "competence", N: 6, Mean: 3.5, Score: 62.5},
			{Dimension: "integrity", N: 6, Mean: 4, Score: 75},
		}, nil)

	var buf bytes.Buffer
	if err := service.WriteSummary(t.Context(), "user-1", "run-1", &buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and two rows, got %d records", len(records))
	}
	if records[1][1] != "competence" || records[1][4] != "62.5" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[2][4] != "75.0" {
		t.Errorf("expected score rendered with one decimal, got %q", records[2][4])
	}
}

func TestWriteResponsesFreePlan(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg}, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanFree}, nil)

	var buf bytes.Buffer
	if err := service.WriteResponses(t.Context(), "user-1", "run-1", &buf); !errors.Is(err, ErrPlanGated) {
		t.Errorf("expected ErrPlanGated, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected no csv output for gated export")
	}
}

func TestWriteResponsesBelowThreshold(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg}, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanPro}, nil)
	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-1").Return(2, nil)

	var buf bytes.Buffer
	err := service.WriteResponses(t.Context(), "user-1", "run-1", &buf)
	var gate *scoring.BelowThresholdError
	if !errors.As(err, &gate) {
		t.Fatalf("expected BelowThresholdError, got %v", err)
	}
	if gate.Respondents != 2 || gate.Minimum != 5 {
		t.Errorf("expected 2 of 5, got %d of %d", gate.Respondents, gate.Minimum)
	}
}

func TestWriteAssessmentQuotesEvidence(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetAssessmentRun(gomock.Any(), "as-1").
		Return(&types.AssessmentRun{ID: "as-1", SystemID: "sys-1", Version: 2}, nil)
	mockStorage.EXPECT().GetSystemByID(gomock.Any(), "sys-1").
		Return(&types.System{ID: "sys-1", OwnerID: "user-1", Name: "billing"}, nil)
	mockStorage.EXPECT().ListAssessmentAnswers(gomock.Any(), "as-1").
		Return([]*types.AssessmentAnswer{
			{RunID: "as-1", AreaID: "ownership", Level: 4, Evidence: `see "runbook", section 2`},
		}, nil)

	var buf bytes.Buffer
	if err := service.WriteAssessment(t.Context(), "user-1", "as-1", &buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if records[1][5] != `see "runbook", section 2` {
		t.Errorf("evidence did not survive quoting: %q", records[1][5])
	}
	if records[1][3] != "2" {
		t.Errorf("expected ownership weight 2, got %q", records[1][3])
	}
}
