// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/trustindexhq/trustindex/internal/types"
)

func (s *Storage) InsertResponses(ctx context.Context, responses []*types.Response) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertResponses")
	defer span.End()

	if len(responses) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("responses").
		Columns("id", "run_id", "invite_token", "question_id", "value")

	for _, r := range responses {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate response ID: %w", err)
		}
		query = query.Values(id.String(), r.RunID, r.InviteToken, r.QuestionID, r.Value)
	}

	_, err := query.ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert responses: %w", err)
	}

	return nil
}

func (s *Storage) ListResponsesByRun(ctx context.Context, runID string) ([]*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListResponsesByRun")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "run_id", "invite_token", "question_id", "value", "created_at").
		From("responses").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []*types.Response
	for rows.Next() {
		var r types.Response
		if err := rows.Scan(&r.ID, &r.RunID, &r.InviteToken, &r.QuestionID, &r.Value, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return responses, nil
}

func (s *Storage) CountRespondents(ctx context.Context, runID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRespondents")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(DISTINCT invite_token)").
		From("responses").
		Where(sq.Eq{"run_id": runID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count respondents: %w", err)
	}

	return count, nil
}

// GetDimensionScores reads the pre-aggregated per-dimension means from the
// v_dimension_scores view.
func (s *Storage) GetDimensionScores(ctx context.Context, runID string) ([]types.DimensionScore, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDimensionScores")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("dimension", "n", "mean", "score").
		From("v_dimension_scores").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("dimension ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dimension scores: %w", err)
	}
	defer rows.Close()

	var scores []types.DimensionScore
	for rows.Next() {
		var d types.DimensionScore
		if err := rows.Scan(&d.Dimension, &d.N, &d.Mean, &d.Score); err != nil {
			return nil, fmt.Errorf("failed to scan dimension score: %w", err)
		}
		scores = append(scores, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return scores, nil
}
