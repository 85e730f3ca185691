// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

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

// Cache holds computed run scores in Redis under a TTL.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewCache(client *redis.Client, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Cache {
	return &Cache{
		client: client,
		prefix: "score:",
		ttl:    ttl,
		tracer: tracer,
		logger: logger,
	}
}

func (c *Cache) key(runID string) string {
	return c.prefix + runID
}

// Get returns the cached score for a run, or nil on a miss.
func (c *Cache) Get(ctx context.Context, runID string) (*types.RunScore, error) {
	ctx, span := c.tracer.Start(ctx, "scoring.Cache.Get")
	defer span.End()

	data, err := c.client.Get(ctx, c.key(runID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score cache: %w", err)
	}

	var score types.RunScore
	if err := json.Unmarshal([]byte(data), &score); err != nil {
		// A stale or unreadable entry is treated as a miss.
		c.logger.Warnf("discarding unreadable cached score for run %s: %v", runID, err)
		return nil, nil
	}

	return &score, nil
}

func (c *Cache) Set(ctx context.Context, score *types.RunScore) error {
	ctx, span := c.tracer.Start(ctx, "scoring.Cache.Set")
	defer span.End()

	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	if err := c.client.Set(ctx, c.key(score.RunID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write score cache: %w", err)
	}

	return nil
}

func (c *Cache) Invalidate(ctx context.Context, runID string) error {
	ctx, span := c.tracer.Start(ctx, "scoring.Cache.Invalidate")
	defer span.End()

	if err := c.client.Del(ctx, c.key(runID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate score cache: %w", err)
	}

	return nil
}
