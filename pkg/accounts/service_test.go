// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/plans"
	"github.com/trustindexhq/trustindex/internal/storage"
	"github.com/trustindexhq/trustindex/internal/tracing"
	"github.com/trustindexhq/trustindex/internal/types"
	"github.com/trustindexhq/trustindex/pkg/authentication"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	signer := authentication.NewJWTManager(
		"test-secret",
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	service := NewService(
		mockStorage,
		signer,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage
}

func TestRegister(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u *types.User) (*types.User, error) {
			if u.Email != "owner@example.com" {
				t.Errorf("expected lowercased email, got %q", u.Email)
			}
			if u.Plan != plans.PlanFree {
				t.Errorf("expected new users on the free plan, got %q", u.Plan)
			}
			if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("hunter22")); err != nil {
				t.Errorf("stored hash does not match password: %v", err)
			}
			created := *u
			created.ID = "user-1"
			return &created, nil
		})

	result, err := service.Register(t.Context(), " Owner@Example.com ", "hunter22", "Owner")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if result.User.ID != "user-1" {
		t.Errorf("expected user ID user-1, got %q", result.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrDuplicateKey)

	if _, err := service.Register(t.Context(), "owner@example.com", "hunter22", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	service, mockStorage := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	mockStorage.EXPECT().
		GetUserByEmail(gomock.Any(), "owner@example.com").
		Return(&types.User{ID: "user-1", Email: "owner@example.com", PasswordHash: hash, Plan: plans.PlanPro}, nil)

	result, err := service.Login(t.Context(), "Owner@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service, mockStorage := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	mockStorage.EXPECT().
		GetUserByEmail(gomock.Any(), "owner@example.com").
		Return(&types.User{ID: "user-1", Email: "owner@example.com", PasswordHash: hash}, nil)

	if _, err := service.Login(t.Context(), "owner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, storage.ErrNotFound)

	if _, err := service.Login(t.Context(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	service, mockStorage := newTestService(t)

	update := &types.User{ID: "user-1", Name: "New Name"}
	mockStorage.EXPECT().
		UpdateUser(gomock.Any(), update, []string{"name"}).
		Return(nil)
	mockStorage.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Name: "New Name"}, nil)

	user, err := service.UpdateProfile(t.Context(), update, []string{"name"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "New Name" {
		t.Errorf("expected updated name, got %q", user.Name)
	}
}
