// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockCacheInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockCacheInterface(ctrl)
	service := NewService(
		mockStorage,
		mockCache,
		5,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage, mockCache
}

func orgRun() *types.SurveyRun {
	return &types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg, Status: types.StatusLive}
}

func TestGetDashboardCachedFullBreakdown(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	cached := &types.RunScore{
		RunID:       "run-1",
		Respondents: 7,
		TrustIndex:  62.5,
		Alpha:       0.8,
		Dimensions:  []types.DimensionScore{{Dimension: "competence", N: 7, Mean: 3.5, Score: 62.5}},
		ComputedAt:  time.Now().UTC(),
	}

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").Return(orgRun(), nil)
	mockCache.EXPECT().Get(gomock.Any(), "run-1").Return(cached, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanPro}, nil)

	dashboard, err := service.GetDashboard(t.Context(), "user-1", "run-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dashboard.Score.TrustIndex != 62.5 {
		t.Errorf("expected trust index 62.5, got %v", dashboard.Score.TrustIndex)
	}
	if len(dashboard.Score.Dimensions) != 1 || dashboard.Score.Alpha != 0.8 {
		t.Errorf("expected full breakdown for pro plan, got %+v", dashboard.Score)
	}
}

func TestGetDashboardFreePlanGating(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	cached := &types.RunScore{
		RunID:       "run-1",
		Respondents: 7,
		TrustIndex:  62.5,
		Alpha:       0.8,
		Dimensions:  []types.DimensionScore{{Dimension: "competence", N: 7, Mean: 3.5, Score: 62.5}},
		ComputedAt:  time.Now().UTC(),
	}

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").Return(orgRun(), nil)
	mockCache.EXPECT().Get(gomock.Any(), "run-1").Return(cached, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanFree}, nil)

	dashboard, err := service.GetDashboard(t.Context(), "user-1", "run-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dashboard.Score.TrustIndex != 62.5 || dashboard.Score.Respondents != 7 {
		t.Errorf("free plan should still see index and count, got %+v", dashboard.Score)
	}
	if dashboard.Score.Dimensions != nil || dashboard.Score.Alpha != 0 {
		t.Errorf("free plan must not see the breakdown, got %+v", dashboard.Score)
	}
}

func TestGetDashboardBelowThreshold(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").Return(orgRun(), nil)
	mockCache.EXPECT().Get(gomock.Any(), "run-1").Return(nil, nil)
	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-1").Return(3, nil)

	_, err := service.GetDashboard(t.Context(), "user-1", "run-1")
	var gate *BelowThresholdError
	if !errors.As(err, &gate) {
		t.Fatalf("expected BelowThresholdError, got %v", err)
	}
	if gate.Respondents != 3 || gate.Minimum != 5 {
		t.Errorf("expected 3 of 5 respondents, got %d of %d", gate.Respondents, gate.Minimum)
	}
}

func TestGetDashboardExplorerHasNoGate(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	run := &types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeExplorer, Status: types.StatusClosed}

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").Return(run, nil)
	mockCache.EXPECT().Get(gomock.Any(), "run-1").Return(nil, nil)
	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-1").Return(1, nil)
	mockStorage.EXPECT().GetDimensionScores(gomock.Any(), "run-1").
		Return([]types.DimensionScore{
			{Dimension: "competence", N: 1, Mean: 4, Score: 75},
			{Dimension: "integrity", N: 1, Mean: 3, Score: 50},
		}, nil)
	mockStorage.EXPECT().ListQuestions(gomock.Any()).Return([]*types.Question{
		{ID: "q01", Dimension: "competence", Position: 1},
		{ID: "q02", Dimension: "integrity", Position: 2},
	}, nil)
	mockStorage.EXPECT().ListResponsesByRun(gomock.Any(), "run-1").
		Return([]*types.Response{
			{RunID: "run-1", InviteToken: "self", QuestionID: "q01", Value: 4},
			{RunID: "run-1", InviteToken: "self", QuestionID: "q02", Value: 3},
		}, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanFree}, nil)

	dashboard, err := service.GetDashboard(t.Context(), "user-1", "run-1")
	if err != nil {
		t.Fatalf("expected no error for single explorer submission, got %v", err)
	}
	if dashboard.Score.TrustIndex != 62.5 {
		t.Errorf("expected trust index 62.5, got %v", dashboard.Score.TrustIndex)
	}
}

func TestGetDashboardComputesAlphaWithReversedItems(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	run := orgRun()
	questions := []*types.Question{
		{ID: "q01", Dimension: "competence", Position: 1},
		{ID: "q02", Dimension: "competence", Position: 2, Reversed: true},
	}
	// After flipping q02, both respondents answer consistently across items,
	// so alpha is exactly 1.
	responses := []*types.Response{
		{RunID: "run-1", InviteToken: "tok-a", QuestionID: "q01", Value: 4},
		{RunID: "run-1", InviteToken: "tok-a", QuestionID: "q02", Value: 2},
		{RunID: "run-1", InviteToken: "tok-b", QuestionID: "q01", Value: 2},
		{RunID: "run-1", InviteToken: "tok-b", QuestionID: "q02", Value: 4},
	}

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").Return(run, nil)
	mockCache.EXPECT().Get(gomock.Any(), "run-1").Return(nil, nil)
	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-1").Return(5, nil)
	mockStorage.EXPECT().GetDimensionScores(gomock.Any(), "run-1").
		Return([]types.DimensionScore{{Dimension: "competence", N: 5, Mean: 4, Score: 75}}, nil)
	mockStorage.EXPECT().ListQuestions(gomock.Any()).Return(questions, nil)
	mockStorage.EXPECT().ListResponsesByRun(gomock.Any(), "run-1").Return(responses, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanEnterprise}, nil)

	dashboard, err := service.GetDashboard(t.Context(), "user-1", "run-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dashboard.Score.Alpha != 1 {
		t.Errorf("expected alpha 1, got %v", dashboard.Score.Alpha)
	}
}

func TestGetDashboardHidesForeignRuns(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "someone-else"}, nil)

	if _, err := service.GetDashboard(t.Context(), "user-1", "run-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign run, got %v", err)
	}
}

func TestRefreshLiveRunsSkipsGatedRuns(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	ready := &types.SurveyRun{ID: "run-ready", Mode: types.ModeOrg, Status: types.StatusLive}
	gated := &types.SurveyRun{ID: "run-gated", Mode: types.ModeOrg, Status: types.StatusLive}

	mockStorage.EXPECT().ListLiveOrgRuns(gomock.Any()).
		Return([]*types.SurveyRun{ready, gated}, nil)

	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-ready").Return(6, nil)
	mockStorage.EXPECT().GetDimensionScores(gomock.Any(), "run-ready").
		Return([]types.DimensionScore{{Dimension: "competence", N: 6, Mean: 4, Score: 75}}, nil)
	mockStorage.EXPECT().ListQuestions(gomock.Any()).Return([]*types.Question{
		{ID: "q01", Dimension: "competence", Position: 1},
	}, nil)
	mockStorage.EXPECT().ListResponsesByRun(gomock.Any(), "run-ready").Return(nil, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, score *types.RunScore) error {
			if score.RunID != "run-ready" {
				t.Errorf("expected only the ready run to be cached, got %s", score.RunID)
			}
			return nil
		})

	mockStorage.EXPECT().CountRespondents(gomock.Any(), "run-gated").Return(2, nil)

	if err := service.RefreshLiveRuns(t.Context()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
