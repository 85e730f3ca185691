// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

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

var testQuestions = []*types.Question{
	{ID: "q01", Dimension: "competence", Position: 1},
	{ID: "q02", Dimension: "benevolence", Position: 2, Reversed: true},
	{ID: "q03", Dimension: "integrity", Position: 3},
}

func testAnswers() []Answer {
	return []Answer{
		{QuestionID: "q01", Value: 4},
		{QuestionID: "q02", Value: 2},
		{QuestionID: "q03", Value: 5},
	}
}

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockCacheInvalidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockCacheInvalidator(ctrl)
	service := NewService(
		mockStorage,
		mockCache,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage, mockCache
}

func TestCreateRun(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanPro}, nil)
	mockStorage.EXPECT().
		CountRunsByOwner(gomock.Any(), "user-1").
		Return(3, nil)
	mockStorage.EXPECT().
		CreateRun(gomock.Any(), &types.SurveyRun{
			OwnerID: "user-1",
			Mode:    types.ModeOrg,
			Title:   "Q3 Pulse",
			Status:  types.StatusDraft,
		}).
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg, Title: "Q3 Pulse", Status: types.StatusDraft}, nil)

	run, err := service.CreateRun(t.Context(), "user-1", types.ModeOrg, "Q3 Pulse")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if run.Status != types.StatusDraft {
		t.Errorf("expected new run in draft, got %q", run.Status)
	}
}

func TestCreateRunPlanLimit(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Plan: plans.PlanFree}, nil)
	mockStorage.EXPECT().
		CountRunsByOwner(gomock.Any(), "user-1").
		Return(1, nil)

	if _, err := service.CreateRun(t.Context(), "user-1", types.ModeOrg, "Second"); !errors.Is(err, ErrPlanLimit) {
		t.Errorf("expected ErrPlanLimit, got %v", err)
	}
}

func TestCreateRunInvalidMode(t *testing.T) {
	service, _, _ := newTestService(t)

	if _, err := service.CreateRun(t.Context(), "user-1", "party", "Nope"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestGetRunHidesForeignRuns(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "someone-else"}, nil)

	if _, err := service.GetRun(t.Context(), "user-1", "run-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign run, got %v", err)
	}
}

func TestUpdateRunStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{name: "draft to live", current: types.StatusDraft, next: types.StatusLive},
		{name: "live to closed", current: types.StatusLive, next: types.StatusClosed},
		{name: "draft to closed", current: types.StatusDraft, next: types.StatusClosed},
		{name: "closed to live", current: types.StatusClosed, next: types.StatusLive, wantErr: ErrInvalidTransition},
		{name: "live to draft", current: types.StatusLive, next: types.StatusDraft, wantErr: ErrInvalidTransition},
		{name: "live to live", current: types.StatusLive, next: types.StatusLive, wantErr: ErrInvalidTransition},
		{name: "unknown status", current: types.StatusDraft, next: "paused", wantErr: ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockStorage, _ := newTestService(t)

			if _, ok := statusRank[tc.next]; ok {
				mockStorage.EXPECT().
					GetRunByID(gomock.Any(), "run-1").
					Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Status: tc.current}, nil)
			}
			if tc.wantErr == nil {
				mockStorage.EXPECT().
					UpdateRunStatus(gomock.Any(), "run-1", tc.next).
					Return(nil)
				mockStorage.EXPECT().
					GetRunByID(gomock.Any(), "run-1").
					Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Status: tc.next}, nil)
			}

			run, err := service.UpdateRunStatus(t.Context(), "user-1", "run-1", tc.next)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && run.Status != tc.next {
				t.Errorf("expected status %q, got %q", tc.next, run.Status)
			}
		})
	}
}

func TestCreateInvites(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)
	mockStorage.EXPECT().
		CreateInvites(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, invites []*types.Invite) error {
			if len(invites) != 25 {
				t.Errorf("expected 25 invites, got %d", len(invites))
			}
			seen := make(map[string]bool)
			for _, invite := range invites {
				if len(invite.Token) != tokenLength {
					t.Errorf("expected %d-char token, got %q", tokenLength, invite.Token)
				}
				if seen[invite.Token] {
					t.Errorf("duplicate token %q in batch", invite.Token)
				}
				seen[invite.Token] = true
				if invite.Team != "platform" {
					t.Errorf("expected team to carry through, got %q", invite.Team)
				}
			}
			return nil
		})

	invites, err := service.CreateInvites(t.Context(), "user-1", "run-1", InviteBatch{Count: 25, Team: "platform"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(invites) != 25 {
		t.Errorf("expected 25 invites back, got %d", len(invites))
	}
}

func TestCreateInvitesExplorerRun(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeExplorer, Status: types.StatusDraft}, nil)

	if _, err := service.CreateInvites(t.Context(), "user-1", "run-1", InviteBatch{Count: 5}); !errors.Is(err, ErrNotOrgRun) {
		t.Errorf("expected ErrNotOrgRun, got %v", err)
	}
}

func TestListInvitesCounts(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	used := time.Now()
	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg}, nil)
	mockStorage.EXPECT().
		ListInvitesByRun(gomock.Any(), "run-1").
		Return([]*types.Invite{
			{Token: "a", RunID: "run-1", UsedAt: &used},
			{Token: "b", RunID: "run-1"},
			{Token: "c", RunID: "run-1"},
		}, nil)

	list, err := service.ListInvites(t.Context(), "user-1", "run-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Used != 1 || list.Unused != 2 {
		t.Errorf("expected 1 used / 2 unused, got %d / %d", list.Used, list.Unused)
	}
}

func TestSubmitResponses(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	mockStorage.EXPECT().
		GetInviteByToken(gomock.Any(), "tok-1").
		Return(&types.Invite{Token: "tok-1", RunID: "run-1"}, nil)
	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)
	mockStorage.EXPECT().
		ListQuestions(gomock.Any()).
		Return(testQuestions, nil)
	mockStorage.EXPECT().
		MarkInviteUsed(gomock.Any(), "tok-1").
		Return(nil)
	mockStorage.EXPECT().
		InsertResponses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, responses []*types.Response) error {
			if len(responses) != len(testQuestions) {
				t.Errorf("expected %d responses, got %d", len(testQuestions), len(responses))
			}
			for _, resp := range responses {
				if resp.InviteToken != "tok-1" || resp.RunID != "run-1" {
					t.Errorf("unexpected response row %+v", resp)
				}
			}
			return nil
		})
	mockCache.EXPECT().
		Invalidate(gomock.Any(), "run-1").
		Return(nil)

	if err := service.SubmitResponses(t.Context(), "tok-1", testAnswers()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSubmitResponsesUsedInvite(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	used := time.Now()
	mockStorage.EXPECT().
		GetInviteByToken(gomock.Any(), "tok-1").
		Return(&types.Invite{Token: "tok-1", RunID: "run-1", UsedAt: &used}, nil)

	if err := service.SubmitResponses(t.Context(), "tok-1", testAnswers()); !errors.Is(err, ErrInviteUsed) {
		t.Errorf("expected ErrInviteUsed, got %v", err)
	}
}

func TestSubmitResponsesRunNotLive(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetInviteByToken(gomock.Any(), "tok-1").
		Return(&types.Invite{Token: "tok-1", RunID: "run-1"}, nil)
	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", Mode: types.ModeOrg, Status: types.StatusDraft}, nil)

	if err := service.SubmitResponses(t.Context(), "tok-1", testAnswers()); !errors.Is(err, ErrRunNotLive) {
		t.Errorf("expected ErrRunNotLive, got %v", err)
	}
}

func TestSubmitResponsesConcurrentDoubleSubmit(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetInviteByToken(gomock.Any(), "tok-1").
		Return(&types.Invite{Token: "tok-1", RunID: "run-1"}, nil)
	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)
	mockStorage.EXPECT().
		ListQuestions(gomock.Any()).
		Return(testQuestions, nil)
	mockStorage.EXPECT().
		MarkInviteUsed(gomock.Any(), "tok-1").
		Return(storage.ErrNotFound)

	if err := service.SubmitResponses(t.Context(), "tok-1", testAnswers()); !errors.Is(err, ErrInviteUsed) {
		t.Errorf("expected ErrInviteUsed when invite was taken concurrently, got %v", err)
	}
}

func TestSubmitResponsesInvalidAnswerSets(t *testing.T) {
	testCases := []struct {
		name    string
		answers []Answer
	}{
		{name: "missing question", answers: []Answer{{QuestionID: "q01", Value: 3}}},
		{name: "unknown question", answers: []Answer{
			{QuestionID: "q01", Value: 3}, {QuestionID: "q02", Value: 3}, {QuestionID: "q99", Value: 3},
		}},
		{name: "duplicate question", answers: []Answer{
			{QuestionID: "q01", Value: 3}, {QuestionID: "q01", Value: 4}, {QuestionID: "q02", Value: 3},
		}},
		{name: "value out of range", answers: []Answer{
			{QuestionID: "q01", Value: 3}, {QuestionID: "q02", Value: 6}, {QuestionID: "q03", Value: 3},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockStorage, _ := newTestService(t)

			mockStorage.EXPECT().
				GetInviteByToken(gomock.Any(), "tok-1").
				Return(&types.Invite{Token: "tok-1", RunID: "run-1"}, nil)
			mockStorage.EXPECT().
				GetRunByID(gomock.Any(), "run-1").
				Return(&types.SurveyRun{ID: "run-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)
			mockStorage.EXPECT().
				ListQuestions(gomock.Any()).
				Return(testQuestions, nil)

			if err := service.SubmitResponses(t.Context(), "tok-1", tc.answers); !errors.Is(err, ErrInvalidAnswers) {
				t.Errorf("expected ErrInvalidAnswers, got %v", err)
			}
		})
	}
}

func TestSubmitExplorerClosesRun(t *testing.T) {
	service, mockStorage, mockCache := newTestService(t)

	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeExplorer, Status: types.StatusLive}, nil)
	mockStorage.EXPECT().
		ListQuestions(gomock.Any()).
		Return(testQuestions, nil)
	mockStorage.EXPECT().
		InsertResponses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, responses []*types.Response) error {
			for _, resp := range responses {
				if resp.InviteToken != selfToken {
					t.Errorf("expected self token, got %q", resp.InviteToken)
				}
			}
			return nil
		})
	mockStorage.EXPECT().
		UpdateRunStatus(gomock.Any(), "run-1", types.StatusClosed).
		Return(nil)
	mockCache.EXPECT().
		Invalidate(gomock.Any(), "run-1").
		Return(nil)

	if err := service.SubmitExplorer(t.Context(), "user-1", "run-1", testAnswers()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSubmitExplorerOnOrgRun(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().
		GetRunByID(gomock.Any(), "run-1").
		Return(&types.SurveyRun{ID: "run-1", OwnerID: "user-1", Mode: types.ModeOrg, Status: types.StatusLive}, nil)

	if err := service.SubmitExplorer(t.Context(), "user-1", "run-1", testAnswers()); !errors.Is(err, ErrNotExplorerRun) {
		t.Errorf("expected ErrNotExplorerRun, got %v", err)
	}
}
