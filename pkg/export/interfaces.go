// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"context"
	"io"

	"github.com/trustindexhq/trustindex/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package export -destination ./mock_export.go -source=./interfaces.go

type ServiceInterface interface {
	WriteResponses(ctx context.Context, ownerID, runID string, w io.Writer) error
	WriteSummary(ctx context.Context, ownerID, runID string, w io.Writer) error
	WriteAssessment(ctx context.Context, ownerID, assessmentID string, w io.Writer) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	GetRunByID(ctx context.Context, id string) (*types.SurveyRun, error)
	ListQuestions(ctx context.Context) ([]*types.Question, error)
	ListResponsesByRun(ctx context.Context, runID string) ([]*types.Response, error)
	CountRespondents(ctx context.Context, runID string) (int, error)
	GetDimensionScores(ctx context.Context, runID string) ([]types.DimensionScore, error)

	GetSystemByID(ctx context.Context, id string) (*types.System, error)
	GetAssessmentRun(ctx context.Context, id string) (*types.AssessmentRun, error)
	ListAssessmentAnswers(ctx context.Context, runID string) ([]*types.AssessmentAnswer, error)
}
