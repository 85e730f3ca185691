// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"context"

	"github.com/trustindexhq/trustindex/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package scoring -destination ./mock_scoring.go -source=./interfaces.go

type ServiceInterface interface {
	GetDashboard(ctx context.Context, viewerID, runID string) (*Dashboard, error)
	RefreshLiveRuns(ctx context.Context) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetRunByID(ctx context.Context, id string) (*types.SurveyRun, error)
	ListLiveOrgRuns(ctx context.Context) ([]*types.SurveyRun, error)
	ListQuestions(ctx context.Context) ([]*types.Question, error)
	ListResponsesByRun(ctx context.Context, runID string) ([]*types.Response, error)
	CountRespondents(ctx context.Context, runID string) (int, error)
	GetDimensionScores(ctx context.Context, runID string) ([]types.DimensionScore, error)
}

// CacheInterface holds computed run scores between reads.
type CacheInterface interface {
	Get(ctx context.Context, runID string) (*types.RunScore, error)
	Set(ctx context.Context, score *types.RunScore) error
	Invalidate(ctx context.Context, runID string) error
}

// HistoryInterface records and lists a viewer's recently seen runs.
type HistoryInterface interface {
	Record(ctx context.Context, userID, runID, title string) error
	List(ctx context.Context, userID string) ([]types.RecentRun, error)
}
