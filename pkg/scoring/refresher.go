// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"context"
	"time"

	"github.com/trustindexhq/trustindex/internal/logging"
)

// Refresher keeps cached scores of live org runs warm so dashboard reads
// rarely pay the aggregation cost.
type Refresher struct {
	service  ServiceInterface
	interval time.Duration
	logger   logging.LoggerInterface
}

func NewRefresher(service ServiceInterface, interval time.Duration, logger logging.LoggerInterface) *Refresher {
	return &Refresher{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes on the configured interval until the context is cancelled.
// It is meant to be started in its own goroutine.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("score refresher stopped")
			return
		case <-ticker.C:
			if err := r.service.RefreshLiveRuns(ctx); err != nil {
				r.logger.Warnf("score refresh pass failed: %v", err)
			}
		}
	}
}
