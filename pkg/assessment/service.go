// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package assessment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

var (
	ErrPlanLimit    = errors.New("plan system limit reached")
	ErrUnknownArea  = errors.New("unknown assessment area")
	ErrInvalidLevel = errors.New("level must be between 1 and 5")
	ErrCompleted    = errors.New("assessment is already completed")
)

// Detail is one assessment run with its answers and, once every area is
// rated, the weighted maturity score on a 0–100 scale.
type Detail struct {
	Run      *types.AssessmentRun      `json:"run"`
	Answers  []*types.AssessmentAnswer `json:"answers"`
	Score    *float64                  `json:"score,omitempty"`
	Complete bool                      `json:"complete"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateSystem(ctx context.Context, ownerID, name string) (*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.CreateSystem")
	defer span.End()

	owner, err := s.storage.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}

	count, err := s.storage.CountSystemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count systems: %w", err)
	}
	if !plans.CanCreateSystem(owner.Plan, count) {
		return nil, ErrPlanLimit
	}

	return s.storage.CreateSystem(ctx, &types.System{OwnerID: ownerID, Name: name})
}

func (s *Service) GetSystem(ctx context.Context, ownerID, systemID string) (*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.GetSystem")
	defer span.End()

	return s.ownedSystem(ctx, ownerID, systemID)
}

func (s *Service) ListSystems(ctx context.Context, ownerID string) ([]*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.ListSystems")
	defer span.End()

	return s.storage.ListSystemsByOwner(ctx, ownerID)
}

func (s *Service) DeleteSystem(ctx context.Context, ownerID, systemID string) error {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.DeleteSystem")
	defer span.End()

	if _, err := s.ownedSystem(ctx, ownerID, systemID); err != nil {
		return err
	}

	return s.storage.DeleteSystem(ctx, systemID)
}

func (s *Service) StartAssessment(ctx context.Context, ownerID, systemID string) (*types.AssessmentRun, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.StartAssessment")
	defer span.End()

	if _, err := s.ownedSystem(ctx, ownerID, systemID); err != nil {
		return nil, err
	}

	return s.storage.CreateAssessmentRun(ctx, systemID)
}

func (s *Service) ListAssessments(ctx context.Context, ownerID, systemID string) ([]*types.AssessmentRun, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.ListAssessments")
	defer span.End()

	if _, err := s.ownedSystem(ctx, ownerID, systemID); err != nil {
		return nil, err
	}

	return s.storage.ListAssessmentRunsBySystem(ctx, systemID)
}

func (s *Service) GetAssessment(ctx context.Context, ownerID, runID string) (*Detail, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.GetAssessment")
	defer span.End()

	run, err := s.ownedRun(ctx, ownerID, runID)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, run)
}

func (s *Service) SubmitAnswer(ctx context.Context, ownerID, runID, areaID string, level int, evidence string) (*Detail, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Service.SubmitAnswer")
	defer span.End()

	if _, ok := AreaByID(areaID); !ok {
		return nil, ErrUnknownArea
	}
	if level < 1 || level > 5 {
		return nil, ErrInvalidLevel
	}

	run, err := s.ownedRun(ctx, ownerID, runID)
	if err != nil {
		return nil, err
	}
	if run.Status == types.AssessmentCompleted {
		return nil, ErrCompleted
	}

	if err := s.storage.UpsertAssessmentAnswer(ctx, &types.AssessmentAnswer{
		RunID:    runID,
		AreaID:   areaID,
		Level:    level,
		Evidence: evidence,
	}); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	detail, err := s.detail(ctx, run)
	if err != nil {
		return nil, err
	}

	if detail.Complete && run.Status == types.AssessmentPending {
		if err := s.storage.UpdateAssessmentStatus(ctx, runID, types.AssessmentCompleted); err != nil {
			return nil, fmt.Errorf("failed to complete assessment: %w", err)
		}
		run.Status = types.AssessmentCompleted
	}

	return detail, nil
}

// detail assembles a run's answers and derives the weighted score once all
// areas are covered.
func (s *Service) detail(ctx context.Context, run *types.AssessmentRun) (*Detail, error) {
	answers, err := s.storage.ListAssessmentAnswers(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}

	detail := &Detail{Run: run, Answers: answers}
	if len(answers) == len(Areas) {
		detail.Complete = true
		score := MaturityScore(answers)
		detail.Score = &score
	}

	return detail, nil
}

// MaturityScore is the weighted average of area levels rescaled to 0–100,
// rounded to one decimal.
func MaturityScore(answers []*types.AssessmentAnswer) float64 {
	weightSum := 0.0
	levelSum := 0.0
	for _, a := range answers {
		area, ok := AreaByID(a.AreaID)
		if !ok {
			continue
		}
		weightSum += area.Weight
		levelSum += area.Weight * float64(a.Level)
	}
	if weightSum == 0 {
		return 0
	}

	mean := levelSum / weightSum
	return math.Round((mean-1)/4*100*10) / 10
}

func (s *Service) ownedSystem(ctx context.Context, ownerID, systemID string) (*types.System, error) {
	system, err := s.storage.GetSystemByID(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if system.OwnerID != ownerID {
		s.logger.Security().AuthzFailure(ownerID, "system ownership")
		return nil, storage.ErrNotFound
	}
	return system, nil
}

// ownedRun resolves an assessment run through its system's owner.
func (s *Service) ownedRun(ctx context.Context, ownerID, runID string) (*types.AssessmentRun, error) {
	run, err := s.storage.GetAssessmentRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedSystem(ctx, ownerID, run.SystemID); err != nil {
		return nil, err
	}
	return run, nil
}
