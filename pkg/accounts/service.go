// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthResult struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

type Service struct {
	storage StorageInterface
	signer  authentication.TokenSignerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	signer authentication.TokenSignerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		signer:  signer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Register")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Plan:         plans.PlanFree,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.signer.SignToken(user.ID, user.Email, user.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Security().AuthnFailure(email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.signer.SignToken(user.ID, user.Email, user.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetProfile")
	defer span.End()

	return s.storage.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, user *types.User, paths []string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdateProfile")
	defer span.End()

	if err := s.storage.UpdateUser(ctx, user, paths); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.storage.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated profile: %w", err)
	}

	return updated, nil
}
