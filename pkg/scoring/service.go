// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

// BelowThresholdError withholds org run results until enough distinct
// respondents have submitted, so individual answers stay unattributable.
type BelowThresholdError struct {
	Respondents int
	Minimum     int
}

func (e *BelowThresholdError) Error() string {
	return fmt.Sprintf("run has %d of %d required respondents", e.Respondents, e.Minimum)
}

// Dashboard is the owner's view of one run: the run itself plus its derived
// score, trimmed to what the owner's plan may see.
type Dashboard struct {
	Run   *types.SurveyRun `json:"run"`
	Score *types.RunScore  `json:"score"`
}

type Service struct {
	storage        StorageInterface
	cache          CacheInterface
	minRespondents int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache CacheInterface,
	minRespondents int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		cache:          cache,
		minRespondents: minRespondents,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

func (s *Service) GetDashboard(ctx context.Context, viewerID, runID string) (*Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "scoring.Service.GetDashboard")
	defer span.End()

	run, err := s.storage.GetRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.OwnerID != viewerID {
		s.logger.Security().AuthzFailure(viewerID, "run ownership")
		return nil, storage.ErrNotFound
	}

	score, err := s.scoreForRun(ctx, run)
	if err != nil {
		return nil, err
	}

	viewer, err := s.storage.GetUserByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up viewer: %w", err)
	}

	return &Dashboard{Run: run, Score: gatedView(viewer.Plan, score)}, nil
}

// RefreshLiveRuns recomputes and caches the score of every live org run.
// Runs still below the respondent gate are skipped.
func (s *Service) RefreshLiveRuns(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "scoring.Service.RefreshLiveRuns")
	defer span.End()

	runs, err := s.storage.ListLiveOrgRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to list live runs: %w", err)
	}

	for _, run := range runs {
		score, err := s.computeScore(ctx, run)
		if err != nil {
			if _, gated := err.(*BelowThresholdError); gated {
				continue
			}
			s.logger.Warnf("failed to refresh score for run %s: %v", run.ID, err)
			continue
		}
		if err := s.cache.Set(ctx, score); err != nil {
			s.logger.Warnf("failed to cache score for run %s: %v", run.ID, err)
		}
	}

	return nil
}

// scoreForRun serves from cache when possible and computes otherwise.
func (s *Service) scoreForRun(ctx context.Context, run *types.SurveyRun) (*types.RunScore, error) {
	if cached, err := s.cache.Get(ctx, run.ID); err != nil {
		s.logger.Warnf("score cache read failed for run %s: %v", run.ID, err)
	} else if cached != nil {
		return cached, nil
	}

	score, err := s.computeScore(ctx, run)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, score); err != nil {
		s.logger.Warnf("failed to cache score for run %s: %v", run.ID, err)
	}

	return score, nil
}

func (s *Service) computeScore(ctx context.Context, run *types.SurveyRun) (*types.RunScore, error) {
	ctx, span := s.tracer.Start(ctx, "scoring.Service.computeScore")
	defer span.End()

	respondents, err := s.storage.CountRespondents(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count respondents: %w", err)
	}

	// Explorer runs are a single self submission; only org runs carry the
	// anonymity gate.
	minimum := 1
	if run.Mode == types.ModeOrg {
		minimum = s.minRespondents
	}
	if respondents < minimum {
		return nil, &BelowThresholdError{Respondents: respondents, Minimum: minimum}
	}

	dimensions, err := s.storage.GetDimensionScores(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dimension scores: %w", err)
	}

	total := 0.0
	for _, d := range dimensions {
		total += d.Score
	}
	trustIndex := 0.0
	if len(dimensions) > 0 {
		trustIndex = roundScore(total / float64(len(dimensions)))
	}

	alpha, err := s.reliability(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	return &types.RunScore{
		RunID:       run.ID,
		Respondents: respondents,
		TrustIndex:  trustIndex,
		Alpha:       alpha,
		Dimensions:  dimensions,
		ComputedAt:  time.Now().UTC(),
	}, nil
}

// reliability builds the respondent-by-item matrix, with reversed items
// flipped, and returns Cronbach's alpha over it.
func (s *Service) reliability(ctx context.Context, runID string) (float64, error) {
	questions, err := s.storage.ListQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list questions: %w", err)
	}
	responses, err := s.storage.ListResponsesByRun(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("failed to list responses: %w", err)
	}

	column := make(map[string]int, len(questions))
	reversed := make(map[string]bool, len(questions))
	for i, q := range questions {
		column[q.ID] = i
		reversed[q.ID] = q.Reversed
	}

	rows := make(map[string][]float64)
	for _, r := range responses {
		row, ok := rows[r.InviteToken]
		if !ok {
			row = make([]float64, len(questions))
			rows[r.InviteToken] = row
		}
		value := r.Value
		if reversed[r.QuestionID] {
			value = ReverseScore(likertPoints, value)
		}
		if i, ok := column[r.QuestionID]; ok {
			row[i] = float64(value)
		}
	}

	tokens := make([]string, 0, len(rows))
	for token := range rows {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	matrix := make([][]float64, 0, len(tokens))
	for _, token := range tokens {
		matrix = append(matrix, rows[token])
	}

	return roundScore(CronbachAlpha(matrix)), nil
}

// gatedView trims the score to what the plan may see: free plans get the
// index and respondent count only.
func gatedView(plan string, score *types.RunScore) *types.RunScore {
	if plans.HasFullBreakdown(plan) {
		return score
	}
	return &types.RunScore{
		RunID:       score.RunID,
		Respondents: score.Respondents,
		TrustIndex:  score.TrustIndex,
		ComputedAt:  score.ComputedAt,
	}
}
