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

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var newUser types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "name", "password_hash", "plan").
		Values(id.String(), u.Email, u.Name, u.PasswordHash, u.Plan).
		Suffix("RETURNING id, email, name, password_hash, plan, created_at").
		QueryRowContext(ctx).
		Scan(&newUser.ID, &newUser.Email, &newUser.Name, &newUser.PasswordHash, &newUser.Plan, &newUser.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &newUser, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return s.getUser(ctx, "storage.GetUserByEmail", sq.Eq{"email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	return s.getUser(ctx, "storage.GetUserByID", sq.Eq{"id": id})
}

func (s *Storage) getUser(ctx context.Context, span string, where sq.Eq) (*types.User, error) {
	ctx, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "name", "password_hash", "plan", "created_at").
		From("users").
		Where(where).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Plan, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// UpdateUser updates fields named in paths following PATCH semantics.
func (s *Storage) UpdateUser(ctx context.Context, u *types.User, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = u.Name
		case "plan":
			updateMap["plan"] = u.Plan
		case "password_hash":
			updateMap["password_hash"] = u.PasswordHash
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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
