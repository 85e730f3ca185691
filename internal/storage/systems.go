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

func (s *Storage) CreateSystem(ctx context.Context, sys *types.System) (*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSystem")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate system ID: %w", err)
	}

	var newSystem types.System
	err = s.db.Statement(ctx).
		Insert("systems").
		Columns("id", "owner_id", "name").
		Values(id.String(), sys.OwnerID, sys.Name).
		Suffix("RETURNING id, owner_id, name, created_at").
		QueryRowContext(ctx).
		Scan(&newSystem.ID, &newSystem.OwnerID, &newSystem.Name, &newSystem.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert system: %w", err)
	}

	return &newSystem, nil
}

func (s *Storage) GetSystemByID(ctx context.Context, id string) (*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSystemByID")
	defer span.End()

	var sys types.System
	err := s.db.Statement(ctx).
		Select("id", "owner_id", "name", "created_at").
		From("systems").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&sys.ID, &sys.OwnerID, &sys.Name, &sys.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	return &sys, nil
}

func (s *Storage) ListSystemsByOwner(ctx context.Context, ownerID string) ([]*types.System, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSystemsByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "owner_id", "name", "created_at").
		From("systems").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}
	defer rows.Close()

	var systems []*types.System
	for rows.Next() {
		var sys types.System
		if err := rows.Scan(&sys.ID, &sys.OwnerID, &sys.Name, &sys.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan system: %w", err)
		}
		systems = append(systems, &sys)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return systems, nil
}

func (s *Storage) CountSystemsByOwner(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountSystemsByOwner")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("systems").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count systems: %w", err)
	}

	return count, nil
}

func (s *Storage) DeleteSystem(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSystem")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("systems").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete system: %w", err)
	}
	return nil
}

// CreateAssessmentRun starts the next versioned assessment run for a system.
func (s *Storage) CreateAssessmentRun(ctx context.Context, systemID string) (*types.AssessmentRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAssessmentRun")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate assessment run ID: %w", err)
	}

	var run types.AssessmentRun
	err = s.db.Statement(ctx).
		Insert("assessment_runs").
		Columns("id", "system_id", "version", "status").
		Values(
			id.String(),
			systemID,
			sq.Expr("(SELECT COALESCE(MAX(version), 0) + 1 FROM assessment_runs WHERE system_id = ?)", systemID),
			types.AssessmentPending,
		).
		Suffix("RETURNING id, system_id, version, status, created_at").
		QueryRowContext(ctx).
		Scan(&run.ID, &run.SystemID, &run.Version, &run.Status, &run.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert assessment run: %w", err)
	}

	return &run, nil
}

func (s *Storage) GetAssessmentRun(ctx context.Context, id string) (*types.AssessmentRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssessmentRun")
	defer span.End()

	var run types.AssessmentRun
	err := s.db.Statement(ctx).
		Select("id", "system_id", "version", "status", "created_at").
		From("assessment_runs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&run.ID, &run.SystemID, &run.Version, &run.Status, &run.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assessment run: %w", err)
	}

	return &run, nil
}

func (s *Storage) ListAssessmentRunsBySystem(ctx context.Context, systemID string) ([]*types.AssessmentRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAssessmentRunsBySystem")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "system_id", "version", "status", "created_at").
		From("assessment_runs").
		Where(sq.Eq{"system_id": systemID}).
		OrderBy("version DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment runs: %w", err)
	}
	defer rows.Close()

	var runs []*types.AssessmentRun
	for rows.Next() {
		var run types.AssessmentRun
		if err := rows.Scan(&run.ID, &run.SystemID, &run.Version, &run.Status, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment run: %w", err)
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return runs, nil
}

func (s *Storage) UpdateAssessmentStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAssessmentStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("assessment_runs").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update assessment status: %w", err)
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

func (s *Storage) UpsertAssessmentAnswer(ctx context.Context, a *types.AssessmentAnswer) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAssessmentAnswer")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("assessment_answers").
		Columns("run_id", "area_id", "level", "evidence").
		Values(a.RunID, a.AreaID, a.Level, a.Evidence).
		Suffix("ON CONFLICT (run_id, area_id) DO UPDATE SET level = EXCLUDED.level, evidence = EXCLUDED.evidence").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert assessment answer: %w", err)
	}

	return nil
}

func (s *Storage) ListAssessmentAnswers(ctx context.Context, runID string) ([]*types.AssessmentAnswer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAssessmentAnswers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("run_id", "area_id", "level", "evidence", "created_at").
		From("assessment_answers").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("area_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment answers: %w", err)
	}
	defer rows.Close()

	var answers []*types.AssessmentAnswer
	for rows.Next() {
		var a types.AssessmentAnswer
		if err := rows.Scan(&a.RunID, &a.AreaID, &a.Level, &a.Evidence, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment answer: %w", err)
		}
		answers = append(answers, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return answers, nil
}
