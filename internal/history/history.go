// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package history keeps a per-user list of recently viewed survey runs in
// Redis, deduplicated by run ID and capped at a fixed length.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

// maxEntries caps the history length per user.
const maxEntries = 10

type Store struct {
	client *redis.Client
	prefix string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewStore(client *redis.Client, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Store {
	return &Store{
		client: client,
		prefix: "history:",
		tracer: tracer,
		logger: logger,
	}
}

func (s *Store) key(userID string) string {
	return s.prefix + userID
}

// Record prepends a run to the user's history. An existing entry for the same
// run is replaced so the list stays deduplicated with the most recent view first.
func (s *Store) Record(ctx context.Context, userID, runID, title string) error {
	ctx, span := s.tracer.Start(ctx, "history.Store.Record")
	defer span.End()

	entries, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	updated := make([]types.RecentRun, 0, maxEntries)
	updated = append(updated, types.RecentRun{
		RunID:    runID,
		Title:    title,
		ViewedAt: time.Now().UTC(),
	})

	for _, e := range entries {
		if e.RunID == runID {
			continue
		}
		updated = append(updated, e)
		if len(updated) == maxEntries {
			break
		}
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := s.client.Set(ctx, s.key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	return nil
}

// List returns the user's history, most recent first. A missing key yields an
// empty list.
func (s *Store) List(ctx context.Context, userID string) ([]types.RecentRun, error) {
	ctx, span := s.tracer.Start(ctx, "history.Store.List")
	defer span.End()

	data, err := s.client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []types.RecentRun{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var entries []types.RecentRun
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		// Corrupted payloads are dropped rather than wedging the dashboard.
		s.logger.Warnf("discarding unreadable history for user %s: %v", userID, err)
		return []types.RecentRun{}, nil
	}

	return entries, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
