// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package export renders survey and assessment data as RFC 4180 CSV.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/assessment"
	"github.com/trustindexhq/trustindex/pkg/scoring"
)

// ErrPlanGated marks exports reserved for plans with the full breakdown.
var ErrPlanGated = errors.New("export requires a pro or enterprise plan")

type Service struct {
	storage        StorageInterface
	minRespondents int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	minRespondents int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		minRespondents: minRespondents,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// WriteResponses exports one row per stored answer.
func (s *Service) WriteResponses(ctx context.Context, ownerID, runID string, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "export.Service.WriteResponses")
	defer span.End()

	run, err := s.exportableRun(ctx, ownerID, runID)
	if err != nil {
		return err
	}

	questions, err := s.storage.ListQuestions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}
	dimensions := make(map[string]string, len(questions))
	for _, q := range questions {
		dimensions[q.ID] = q.Dimension
	}

	responses, err := s.storage.ListResponsesByRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to list responses: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "invite_token", "question_id", "dimension", "value", "created_at"}); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, r := range responses {
		record := []string{
			run.ID,
			r.InviteToken,
			r.QuestionID,
			dimensions[r.QuestionID],
			strconv.Itoa(r.Value),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary exports the per-dimension aggregate.
func (s *Service) WriteSummary(ctx context.Context, ownerID, runID string, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "export.Service.WriteSummary")
	defer span.End()

	run, err := s.exportableRun(ctx, ownerID, runID)
	if err != nil {
		return err
	}

	scores, err := s.storage.GetDimensionScores(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load dimension scores: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "dimension", "n", "mean", "score"}); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, d := range scores {
		record := []string{
			run.ID,
			d.Dimension,
			strconv.Itoa(d.N),
			strconv.FormatFloat(d.Mean, 'f', -1, 64),
			strconv.FormatFloat(d.Score, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAssessment exports one row per rated area of an assessment run.
func (s *Service) WriteAssessment(ctx context.Context, ownerID, assessmentID string, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "export.Service.WriteAssessment")
	defer span.End()

	run, err := s.storage.GetAssessmentRun(ctx, assessmentID)
	if err != nil {
		return err
	}
	system, err := s.storage.GetSystemByID(ctx, run.SystemID)
	if err != nil {
		return fmt.Errorf("failed to look up system: %w", err)
	}
	if system.OwnerID != ownerID {
		s.logger.Security().AuthzFailure(ownerID, "system ownership")
		return storage.ErrNotFound
	}

	answers, err := s.storage.ListAssessmentAnswers(ctx, assessmentID)
	if err != nil {
		return fmt.Errorf("failed to list answers: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"system_id", "run_id", "area", "weight", "level", "evidence"}); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, a := range answers {
		area, ok := assessment.AreaByID(a.AreaID)
		if !ok {
			continue
		}
		record := []string{
			system.ID,
			run.ID,
			area.ID,
			strconv.FormatFloat(area.Weight, 'f', -1, 64),
			strconv.Itoa(a.Level),
			a.Evidence,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportableRun applies the same ownership, plan, and anonymity checks as
// the dashboard before any survey data leaves the system.
func (s *Service) exportableRun(ctx context.Context, ownerID, runID string) (*types.SurveyRun, error) {
	run, err := s.storage.GetRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.OwnerID != ownerID {
		s.logger.Security().AuthzFailure(ownerID, "run ownership")
		return nil, storage.ErrNotFound
	}

	owner, err := s.storage.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if !plans.HasFullBreakdown(owner.Plan) {
		return nil, ErrPlanGated
	}

	if run.Mode == types.ModeOrg {
		respondents, err := s.storage.CountRespondents(ctx, runID)
		if err != nil {
			return nil, fmt.Errorf("failed to count respondents: %w", err)
		}
		if respondents < s.minRespondents {
			return nil, &scoring.BelowThresholdError{Respondents: respondents, Minimum: s.minRespondents}
		}
	}

	return run, nil
}
