// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

var (
	ErrPlanLimit         = errors.New("plan run limit reached")
	ErrInvalidMode       = errors.New("invalid run mode")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRunNotLive        = errors.New("run is not accepting responses")
	ErrInviteUsed        = errors.New("invite already used")
	ErrNotOrgRun         = errors.New("invites require an org run")
	ErrNotExplorerRun    = errors.New("self submission requires an explorer run")
	ErrInvalidAnswers    = errors.New("invalid answer set")
)

// selfToken marks the owner's own submission on an explorer run.
const selfToken = "self"

// statusRank orders run statuses; transitions may only move forward.
var statusRank = map[string]int{
	types.StatusDraft:  0,
	types.StatusLive:   1,
	types.StatusClosed: 2,
}

type Answer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Value      int    `json:"value" validate:"required,min=1,max=5"`
}

type InviteBatch struct {
	Count    int    `json:"count" validate:"required,min=1,max=500"`
	Team     string `json:"team" validate:"max=100"`
	Level    string `json:"level" validate:"max=100"`
	Location string `json:"location" validate:"max=100"`
}

type InviteList struct {
	Invites []*types.Invite `json:"invites"`
	Used    int             `json:"used"`
	Unused  int             `json:"unused"`
}

// RespondentForm is what an invited respondent sees before answering.
type RespondentForm struct {
	RunID     string            `json:"run_id"`
	Title     string            `json:"title"`
	Questions []*types.Question `json:"questions"`
}

type Service struct {
	storage StorageInterface
	cache   CacheInvalidator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache CacheInvalidator,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateRun(ctx context.Context, ownerID, mode, title string) (*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.CreateRun")
	defer span.End()

	if mode != types.ModeExplorer && mode != types.ModeOrg {
		return nil, ErrInvalidMode
	}

	owner, err := s.storage.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}

	count, err := s.storage.CountRunsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	if !plans.CanCreateRun(owner.Plan, count) {
		return nil, ErrPlanLimit
	}

	return s.storage.CreateRun(ctx, &types.SurveyRun{
		OwnerID: ownerID,
		Mode:    mode,
		Title:   title,
		Status:  types.StatusDraft,
	})
}

func (s *Service) GetRun(ctx context.Context, ownerID, runID string) (*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.GetRun")
	defer span.End()

	return s.ownedRun(ctx, ownerID, runID)
}

func (s *Service) ListRuns(ctx context.Context, ownerID string) ([]*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.ListRuns")
	defer span.End()

	return s.storage.ListRunsByOwner(ctx, ownerID)
}

func (s *Service) UpdateRunStatus(ctx context.Context, ownerID, runID, status string) (*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.UpdateRunStatus")
	defer span.End()

	newRank, ok := statusRank[status]
	if !ok {
		return nil, ErrInvalidTransition
	}

	run, err := s.ownedRun(ctx, ownerID, runID)
	if err != nil {
		return nil, err
	}
	if newRank <= statusRank[run.Status] {
		return nil, ErrInvalidTransition
	}

	if err := s.storage.UpdateRunStatus(ctx, runID, status); err != nil {
		return nil, fmt.Errorf("failed to update run status: %w", err)
	}

	return s.storage.GetRunByID(ctx, runID)
}

func (s *Service) DeleteRun(ctx context.Context, ownerID, runID string) error {
	ctx, span := s.tracer.Start(ctx, "survey.Service.DeleteRun")
	defer span.End()

	if _, err := s.ownedRun(ctx, ownerID, runID); err != nil {
		return err
	}

	return s.storage.DeleteRun(ctx, runID)
}

func (s *Service) ListQuestions(ctx context.Context) ([]*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.ListQuestions")
	defer span.End()

	return s.storage.ListQuestions(ctx)
}

func (s *Service) CreateInvites(ctx context.Context, ownerID, runID string, batch InviteBatch) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.CreateInvites")
	defer span.End()

	run, err := s.ownedRun(ctx, ownerID, runID)
	if err != nil {
		return nil, err
	}
	if run.Mode != types.ModeOrg {
		return nil, ErrNotOrgRun
	}
	if run.Status == types.StatusClosed {
		return nil, ErrRunNotLive
	}

	invites := make([]*types.Invite, 0, batch.Count)
	for i := 0; i < batch.Count; i++ {
		token, err := newInviteToken()
		if err != nil {
			return nil, err
		}
		invites = append(invites, &types.Invite{
			Token:    token,
			RunID:    runID,
			Team:     batch.Team,
			Level:    batch.Level,
			Location: batch.Location,
		})
	}

	if err := s.storage.CreateInvites(ctx, invites); err != nil {
		return nil, fmt.Errorf("failed to create invites: %w", err)
	}

	return invites, nil
}

func (s *Service) ListInvites(ctx context.Context, ownerID, runID string) (*InviteList, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.ListInvites")
	defer span.End()

	if _, err := s.ownedRun(ctx, ownerID, runID); err != nil {
		return nil, err
	}

	invites, err := s.storage.ListInvitesByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	list := &InviteList{Invites: invites}
	for _, invite := range invites {
		if invite.UsedAt != nil {
			list.Used++
		} else {
			list.Unused++
		}
	}

	return list, nil
}

func (s *Service) GetRespondentForm(ctx context.Context, token string) (*RespondentForm, error) {
	ctx, span := s.tracer.Start(ctx, "survey.Service.GetRespondentForm")
	defer span.End()

	invite, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invite.UsedAt != nil {
		return nil, ErrInviteUsed
	}

	run, err := s.storage.GetRunByID(ctx, invite.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up run: %w", err)
	}
	if run.Status != types.StatusLive {
		return nil, ErrRunNotLive
	}

	questions, err := s.storage.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return &RespondentForm{RunID: run.ID, Title: run.Title, Questions: questions}, nil
}

func (s *Service) SubmitResponses(ctx context.Context, token string, answers []Answer) error {
	ctx, span := s.tracer.Start(ctx, "survey.Service.SubmitResponses")
	defer span.End()

	invite, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		return err
	}
	if invite.UsedAt != nil {
		return ErrInviteUsed
	}

	run, err := s.storage.GetRunByID(ctx, invite.RunID)
	if err != nil {
		return fmt.Errorf("failed to look up run: %w", err)
	}
	if run.Status != types.StatusLive {
		return ErrRunNotLive
	}

	responses, err := s.buildResponses(ctx, run.ID, token, answers)
	if err != nil {
		return err
	}

	// Marking the invite first makes concurrent double submission lose here
	// instead of on the unique response constraint.
	if err := s.storage.MarkInviteUsed(ctx, token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInviteUsed
		}
		return fmt.Errorf("failed to mark invite used: %w", err)
	}

	if err := s.storage.InsertResponses(ctx, responses); err != nil {
		return fmt.Errorf("failed to insert responses: %w", err)
	}

	s.invalidateScore(ctx, run.ID)
	return nil
}

func (s *Service) SubmitExplorer(ctx context.Context, ownerID, runID string, answers []Answer) error {
	ctx, span := s.tracer.Start(ctx, "survey.Service.SubmitExplorer")
	defer span.End()

	run, err := s.ownedRun(ctx, ownerID, runID)
	if err != nil {
		return err
	}
	if run.Mode != types.ModeExplorer {
		return ErrNotExplorerRun
	}
	if run.Status == types.StatusClosed {
		return ErrRunNotLive
	}

	responses, err := s.buildResponses(ctx, runID, selfToken, answers)
	if err != nil {
		return err
	}

	if err := s.storage.InsertResponses(ctx, responses); err != nil {
		return fmt.Errorf("failed to insert responses: %w", err)
	}

	// A single self submission is the whole explorer run.
	if err := s.storage.UpdateRunStatus(ctx, runID, types.StatusClosed); err != nil {
		return fmt.Errorf("failed to close run: %w", err)
	}

	s.invalidateScore(ctx, runID)
	return nil
}

// buildResponses validates that the answer set covers the question bank
// exactly once with values in [1,5].
func (s *Service) buildResponses(ctx context.Context, runID, token string, answers []Answer) ([]*types.Response, error) {
	questions, err := s.storage.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(questions), len(answers))
	}

	seen := make(map[string]bool, len(answers))
	responses := make([]*types.Response, 0, len(answers))
	for _, a := range answers {
		if !known[a.QuestionID] {
			return nil, fmt.Errorf("%w: unknown question %q", ErrInvalidAnswers, a.QuestionID)
		}
		if seen[a.QuestionID] {
			return nil, fmt.Errorf("%w: duplicate answer for question %q", ErrInvalidAnswers, a.QuestionID)
		}
		if a.Value < 1 || a.Value > 5 {
			return nil, fmt.Errorf("%w: value %d out of range for question %q", ErrInvalidAnswers, a.Value, a.QuestionID)
		}
		seen[a.QuestionID] = true
		responses = append(responses, &types.Response{
			RunID:       runID,
			InviteToken: token,
			QuestionID:  a.QuestionID,
			Value:       a.Value,
		})
	}

	return responses, nil
}

// ownedRun resolves a run and hides other owners' runs behind ErrNotFound.
func (s *Service) ownedRun(ctx context.Context, ownerID, runID string) (*types.SurveyRun, error) {
	run, err := s.storage.GetRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.OwnerID != ownerID {
		s.logger.Security().AuthzFailure(ownerID, "run ownership")
		return nil, storage.ErrNotFound
	}
	return run, nil
}

func (s *Service) invalidateScore(ctx context.Context, runID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, runID); err != nil {
		s.logger.Warnf("failed to invalidate score cache for run %s: %v", runID, err)
	}
}
