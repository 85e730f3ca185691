// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package assessment

import (
	"context"

	"github.com/trustindexhq/trustindex/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package assessment -destination ./mock_assessment.go -source=./interfaces.go

type ServiceInterface interface {
	CreateSystem(ctx context.Context, ownerID, name string) (*types.System, error)
	GetSystem(ctx context.Context, ownerID, systemID string) (*types.System, error)
	ListSystems(ctx context.Context, ownerID string) ([]*types.System, error)
	DeleteSystem(ctx context.Context, ownerID, systemID string) error

	StartAssessment(ctx context.Context, ownerID, systemID string) (*types.AssessmentRun, error)
	ListAssessments(ctx context.Context, ownerID, systemID string) ([]*types.AssessmentRun, error)
	GetAssessment(ctx context.Context, ownerID, runID string) (*Detail, error)
	SubmitAnswer(ctx context.Context, ownerID, runID, areaID string, level int, evidence string) (*Detail, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)

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
