// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

import (
	"context"

	"github.com/trustindexhq/trustindex/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package survey -destination ./mock_survey.go -source=./interfaces.go

type ServiceInterface interface {
	CreateRun(ctx context.Context, ownerID, mode, title string) (*types.SurveyRun, error)
	GetRun(ctx context.Context, ownerID, runID string) (*types.SurveyRun, error)
	ListRuns(ctx context.Context, ownerID string) ([]*types.SurveyRun, error)
	UpdateRunStatus(ctx context.Context, ownerID, runID, status string) (*types.SurveyRun, error)
	DeleteRun(ctx context.Context, ownerID, runID string) error

	ListQuestions(ctx context.Context) ([]*types.Question, error)

	CreateInvites(ctx context.Context, ownerID, runID string, batch InviteBatch) ([]*types.Invite, error)
	ListInvites(ctx context.Context, ownerID, runID string) (*InviteList, error)

	GetRespondentForm(ctx context.Context, token string) (*RespondentForm, error)
	SubmitResponses(ctx context.Context, token string, answers []Answer) error
	SubmitExplorer(ctx context.Context, ownerID, runID string, answers []Answer) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	CreateRun(ctx context.Context, r *types.SurveyRun) (*types.SurveyRun, error)
	GetRunByID(ctx context.Context, id string) (*types.SurveyRun, error)
	ListRunsByOwner(ctx context.Context, ownerID string) ([]*types.SurveyRun, error)
	CountRunsByOwner(ctx context.Context, ownerID string) (int, error)
	UpdateRunStatus(ctx context.Context, id, status string) error
	DeleteRun(ctx context.Context, id string) error

	ListQuestions(ctx context.Context) ([]*types.Question, error)

	CreateInvites(ctx context.Context, invites []*types.Invite) error
	ListInvitesByRun(ctx context.Context, runID string) ([]*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	MarkInviteUsed(ctx context.Context, token string) error

	InsertResponses(ctx context.Context, responses []*types.Response) error
}

// CacheInvalidator drops any cached score for a run after new responses land.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, runID string) error
}
