// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(client, 10*time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())
	return cache, mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)

	score := &types.RunScore{
		RunID:       "run-1",
		Respondents: 7,
		TrustIndex:  62.5,
		Alpha:       0.8,
		Dimensions: []types.DimensionScore{
			{Dimension: "competence", N: 7, Mean: 3.5, Score: 62.5},
		},
		ComputedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := cache.Set(t.Context(), score); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	got, err := cache.Get(t.Context(), "run-1")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.TrustIndex != 62.5 || got.Respondents != 7 || len(got.Dimensions) != 1 {
		t.Errorf("unexpected cached score %+v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(t.Context(), "run-unknown")
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %+v", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)

	if err := cache.Set(t.Context(), &types.RunScore{RunID: "run-1", TrustIndex: 50}); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := cache.Invalidate(t.Context(), "run-1"); err != nil {
		t.Fatalf("failed to invalidate: %v", err)
	}

	got, err := cache.Get(t.Context(), "run-1")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after invalidation, got %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)

	if err := cache.Set(t.Context(), &types.RunScore{RunID: "run-1", TrustIndex: 50}); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	got, err := cache.Get(t.Context(), "run-1")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after TTL, got %+v", got)
	}
}

func TestCacheUnreadablePayload(t *testing.T) {
	cache, mr := newTestCache(t)

	mr.Set("score:run-1", "not json")

	got, err := cache.Get(t.Context(), "run-1")
	if err != nil {
		t.Fatalf("expected corrupt entry to read as a miss, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for corrupt entry, got %+v", got)
	}
}
