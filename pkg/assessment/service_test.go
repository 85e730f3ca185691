// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package assessment

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	service := NewService(
		mockStorage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage
}

func allAnswers(level int) []*types.AssessmentAnswer {
	answers := make([]*types.AssessmentAnswer, 0, len(Areas))
	for _, a := range Areas {
		answers = append(answers, &types.AssessmentAnswer{RunID: "as-1", AreaID: a.ID, Level: level})
	}
	return answers
}

func TestMaturityScoreBounds(t *testing.T) {
	if got := MaturityScore(allAnswers(5)); got != 100 {
		t.Errorf("expected all-5 assessment to score 100, got %v", got)
	}
	if got := MaturityScore(allAnswers(1)); got != 0 {
		t.Errorf("expected all-1 assessment to score 0, got %v", got)
	}
	if got := MaturityScore(nil); got != 0 {
		t.Errorf("expected empty answer set to score 0, got %v", got)
	}
}

func TestMaturityScoreWeighted(t *testing.T) {
	answers := []*types.AssessmentAnswer{
		{AreaID: "ownership", Level: 4},
		{AreaID: "data-quality", Level: 3},
		{AreaID: "monitoring", Level: 5},
		{AreaID: "access-control", Level: 2},
		{AreaID: "documentation", Level: 3},
		{AreaID: "lifecycle", Level: 4},
	}

	// Weighted mean is 31.5/9 = 3.5, which rescales to 62.5.
	if got := MaturityScore(answers); got != 62.5 {
		t.Errorf("expected weighted score 62.5, got %v", got)
	}
}

func TestCreateSystemPlanLimit(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanFree}, nil)
	mockStorage.EXPECT().CountSystemsByOwner(gomock.Any(), "user-1").Return(1, nil)

	if _, err := service.CreateSystem(t.Context(), "user-1", "billing"); !errors.Is(err, ErrPlanLimit) {
		t.Errorf("expected ErrPlanLimit, got %v", err)
	}
}

func TestCreateSystem(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanEnterprise}, nil)
	mockStorage.EXPECT().CountSystemsByOwner(gomock.Any(), "user-1").Return(400, nil)
	mockStorage.EXPECT().CreateSystem(gomock.Any(), &types.System{OwnerID: "user-1", Name: "billing"}).
		Return(&types.System{ID: "sys-1", OwnerID: "user-1", Name: "billing"}, nil)

	system, err := service.CreateSystem(t.Context(), "user-1", "billing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if system.ID != "sys-1" {
		t.Errorf("expected system sys-1, got %q", system.ID)
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "nonsense", 3, ""); !errors.Is(err, ErrUnknownArea) {
		t.Errorf("expected ErrUnknownArea, got %v", err)
	}
	if _, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "ownership", 6, ""); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "ownership", 0, ""); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestSubmitAnswerPartial(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetAssessmentRun(gomock.Any(), "as-1").
		Return(&types.AssessmentRun{ID: "as-1", SystemID: "sys-1", Status: types.AssessmentPending}, nil)
	mockStorage.EXPECT().GetSystemByID(gomock.Any(), "sys-1").
		Return(&types.System{ID: "sys-1", OwnerID: "user-1"}, nil)
	mockStorage.EXPECT().UpsertAssessmentAnswer(gomock.Any(), &types.AssessmentAnswer{
		RunID: "as-1", AreaID: "ownership", Level: 4, Evidence: "https://wiki.example.com/owners",
	}).Return(nil)
	mockStorage.EXPECT().ListAssessmentAnswers(gomock.Any(), "as-1").
		Return([]*types.AssessmentAnswer{{RunID: "as-1", AreaID: "ownership", Level: 4}}, nil)

	detail, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "ownership", 4, "https://wiki.example.com/owners")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Complete {
		t.Error("expected assessment to stay incomplete with one answer")
	}
	if detail.Score != nil {
		t.Errorf("expected no score before completion, got %v", *detail.Score)
	}
}

func TestSubmitAnswerCompletesRun(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetAssessmentRun(gomock.Any(), "as-1").
		Return(&types.AssessmentRun{ID: "as-1", SystemID: "sys-1", Status: types.AssessmentPending}, nil)
	mockStorage.EXPECT().GetSystemByID(gomock.Any(), "sys-1").
		Return(&types.System{ID: "sys-1", OwnerID: "user-1"}, nil)
	mockStorage.EXPECT().UpsertAssessmentAnswer(gomock.Any(), gomock.Any()).Return(nil)
	mockStorage.EXPECT().ListAssessmentAnswers(gomock.Any(), "as-1").
		Return(allAnswers(5), nil)
	mockStorage.EXPECT().UpdateAssessmentStatus(gomock.Any(), "as-1", types.AssessmentCompleted).
		Return(nil)

	detail, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "lifecycle", 5, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !detail.Complete {
		t.Error("expected assessment to complete with all areas answered")
	}
	if detail.Score == nil || *detail.Score != 100 {
		t.Errorf("expected score 100, got %v", detail.Score)
	}
	if detail.Run.Status != types.AssessmentCompleted {
		t.Errorf("expected completed status, got %q", detail.Run.Status)
	}
}

func TestSubmitAnswerOnCompletedRun(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetAssessmentRun(gomock.Any(), "as-1").
		Return(&types.AssessmentRun{ID: "as-1", SystemID: "sys-1", Status: types.AssessmentCompleted}, nil)
	mockStorage.EXPECT().GetSystemByID(gomock.Any(), "sys-1").
		Return(&types.System{ID: "sys-1", OwnerID: "user-1"}, nil)

	if _, err := service.SubmitAnswer(t.Context(), "user-1", "as-1", "ownership", 3, ""); !errors.Is(err, ErrCompleted) {
		t.Errorf("expected ErrCompleted, got %v", err)
	}
}

func TestGetAssessmentHidesForeignSystems(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetAssessmentRun(gomock.Any(), "as-1").
		Return(&types.AssessmentRun{ID: "as-1", SystemID: "sys-1"}, nil)
	mockStorage.EXPECT().GetSystemByID(gomock.Any(), "sys-1").
		Return(&types.System{ID: "sys-1", OwnerID: "someone-else"}, nil)

	if _, err := service.GetAssessment(t.Context(), "user-1", "as-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign assessment, got %v", err)
	}
}
