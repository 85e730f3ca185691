// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/trustindexhq/trustindex/internal/types"
)

type StorageInterface interface {
	// Users
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error

	// Survey runs
	CreateRun(ctx context.Context, r *types.SurveyRun) (*types.SurveyRun, error)
	GetRunByID(ctx context.Context, id string) (*types.SurveyRun, error)
	ListRunsByOwner(ctx context.Context, ownerID string) ([]*types.SurveyRun, error)
	ListLiveOrgRuns(ctx context.Context) ([]*types.SurveyRun, error)
	CountRunsByOwner(ctx context.Context, ownerID string) (int, error)
	UpdateRunStatus(ctx context.Context, id, status string) error
	DeleteRun(ctx context.Context, id string) error

	// Questions
	ListQuestions(ctx context.Context) ([]*types.Question, error)

	// Invites
	CreateInvites(ctx context.Context, invites []*types.Invite) error
	ListInvitesByRun(ctx context.Context, runID string) ([]*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	MarkInviteUsed(ctx context.Context, token string) error

	// Responses
	InsertResponses(ctx context.Context, responses []*types.Response) error
	ListResponsesByRun(ctx context.Context, runID string) ([]*types.Response, error)
	CountRespondents(ctx context.Context, runID string) (int, error)

	// Derived scores (database views)
	GetDimensionScores(ctx context.Context, runID string) ([]types.DimensionScore, error)

	// Systems and assessment runs
	CreateSystem(ctx context.Context, s *types.System) (*types.System, error)
	GetSystemByID(ctx context.Context, id string) (*types.System, error)
	ListSystemsByOwner(ctx context.Context, ownerID string) ([]*types.System, error)
	CountSystemsByOwner(ctx context.Context, ownerID string) (int, error)
	DeleteSystem(ctx context.Context, id string) error
	CreateAssessmentRun(ctx context.Context, systemID string) (*types.AssessmentRun, error)
	GetAssessmentRun(ctx context.Context, id string) (*types.AssessmentRun, error)
	ListAssessmentRunsBySystem(ctx context.Context, systemID string) ([]*types.AssessmentRun, error)
	UpdateAssessmentStatus(ctx context.Context, id, status string) error
	UpsertAssessmentAnswer(ctx context.Context, a *types.AssessmentAnswer) error
	ListAssessmentAnswers(ctx context.Context, runID string) ([]*types.AssessmentAnswer, error)
}
