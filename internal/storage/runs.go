// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trustindexhq/trustindex/internal/types"
)

func (s *Storage) CreateRun(ctx context.Context, r *types.SurveyRun) (*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRun")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}

	var newRun types.SurveyRun
	err = s.db.Statement(ctx).
		Insert("survey_runs").
		Columns("id", "owner_id", "mode", "title", "status").
		Values(id.String(), r.OwnerID, r.Mode, r.Title, r.Status).
		Suffix("RETURNING id, owner_id, mode, title, status, created_at, closed_at").
		QueryRowContext(ctx).
		Scan(&newRun.ID, &newRun.OwnerID, &newRun.Mode, &newRun.Title, &newRun.Status, &newRun.CreatedAt, &newRun.ClosedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert survey run: %w", err)
	}

	return &newRun, nil
}

func (s *Storage) GetRunByID(ctx context.Context, id string) (*types.SurveyRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRunByID")
	defer span.End()

	var r types.SurveyRun
	err := s.db.Statement(ctx).
		Select("id", "owner_id", "mode", "title", "status", "created_at", "closed_at").
		From("survey_runs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.OwnerID, &r.Mode, &r.Title, &r.Status, &r.CreatedAt, &r.ClosedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get survey run: %w", err)
	}

	return &r, nil
}

func (s *Storage) ListRunsByOwner(ctx context.Context, ownerID string) ([]*types.SurveyRun, error) {
	return s.listRuns(ctx, "storage.ListRunsByOwner", sq.Eq{"owner_id": ownerID})
}

// ListLiveOrgRuns returns the organisational runs whose scores the background
// refresher keeps warm.
func (s *Storage) ListLiveOrgRuns(ctx context.Context) ([]*types.SurveyRun, error) {
	return s.listRuns(ctx, "storage.ListLiveOrgRuns", sq.Eq{"mode": types.ModeOrg, "status": types.StatusLive})
}

func (s *Storage) listRuns(ctx context.Context, span string, where sq.Eq) ([]*types.SurveyRun, error) {
	ctx, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "owner_id", "mode", "title", "status", "created_at", "closed_at").
		From("survey_runs").
		Where(where).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list survey runs: %w", err)
	}
	defer rows.Close()

	var runs []*types.SurveyRun
	for rows.Next() {
		var r types.SurveyRun
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Mode, &r.Title, &r.Status, &r.CreatedAt, &r.ClosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey run: %w", err)
		}
		runs = append(runs, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return runs, nil
}

func (s *Storage) CountRunsByOwner(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRunsByOwner")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("survey_runs").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count survey runs: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateRunStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRunStatus")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("survey_runs").
		Set("status", status).
		Where(sq.Eq{"id": id})

	if status == types.StatusClosed {
		query = query.Set("closed_at", sq.Expr("NOW()"))
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteRun(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRun")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("survey_runs").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete survey run: %w", err)
	}
	return nil
}

func (s *Storage) ListQuestions(ctx context.Context) ([]*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListQuestions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "dimension", "prompt", "position", "reversed").
		From("questions").
		OrderBy("position ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*types.Question
	for rows.Next() {
		var q types.Question
		if err := rows.Scan(&q.ID, &q.Dimension, &q.Prompt, &q.Position, &q.Reversed); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return questions, nil
}
