// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/trustindexhq/trustindex/internal/types"
)

func (s *Storage) CreateInvites(ctx context.Context, invites []*types.Invite) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvites")
	defer span.End()

	if len(invites) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("invites").
		Columns("token", "run_id", "team", "level", "location")

	for _, inv := range invites {
		query = query.Values(inv.Token, inv.RunID, inv.Team, inv.Level, inv.Location)
	}

	_, err := query.ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert invites: %w", err)
	}

	return nil
}

func (s *Storage) ListInvitesByRun(ctx context.Context, runID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByRun")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("token", "run_id", "team", "level", "location", "used_at", "created_at").
		From("invites").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		var inv types.Invite
		if err := rows.Scan(&inv.Token, &inv.RunID, &inv.Team, &inv.Level, &inv.Location, &inv.UsedAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	var inv types.Invite
	err := s.db.Statement(ctx).
		Select("token", "run_id", "team", "level", "location", "used_at", "created_at").
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.Token, &inv.RunID, &inv.Team, &inv.Level, &inv.Location, &inv.UsedAt, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &inv, nil
}

// MarkInviteUsed stamps used_at once; a second use reports ErrNotFound so the
// caller can reject replayed tokens.
func (s *Storage) MarkInviteUsed(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInviteUsed")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("used_at", sq.Expr("NOW()")).
		Where(sq.Eq{"token": token}).
		Where("used_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invite used: %w", err)
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
