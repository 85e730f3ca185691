// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/tracing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, tracing.NewNoopTracer(), logging.NewNoopLogger())
}

func TestRecordDedupesByRunID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, "user-1", "run-a", "First"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Record(ctx, "user-1", "run-b", "Second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Record(ctx, "user-1", "run-a", "First again"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RunID != "run-a" || entries[0].Title != "First again" {
		t.Errorf("expected most recent entry for run-a first, got %+v", entries[0])
	}
	if entries[1].RunID != "run-b" {
		t.Errorf("expected run-b second, got %+v", entries[1])
	}
}

func TestRecordCapsListLength(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		runID := fmt.Sprintf("run-%02d", i)
		if err := s.Record(ctx, "user-1", runID, "Run"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != maxEntries {
		t.Fatalf("expected %d entries, got %d", maxEntries, len(entries))
	}
	if entries[0].RunID != "run-14" {
		t.Errorf("expected newest entry first, got %s", entries[0].RunID)
	}
	if entries[maxEntries-1].RunID != "run-05" {
		t.Errorf("expected oldest surviving entry run-05, got %s", entries[maxEntries-1].RunID)
	}
}

func TestListEmptyForUnknownUser(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history, got %d entries", len(entries))
	}
}

func TestListDiscardsCorruptPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewStore(client, tracing.NewNoopTracer(), logging.NewNoopLogger())
	mr.Set("history:user-1", "{not json")

	entries, err := s.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected corrupt history to be discarded, got %d entries", len(entries))
	}
}
