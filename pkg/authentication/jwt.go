// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/trustindexhq/trustindex/internal/logging"
	"github.com/trustindexhq/trustindex/internal/monitoring"
	"github.com/trustindexhq/trustindex/internal/tracing"
)

type Claims struct {
	Email string `json:"email,omitempty"`
	Plan  string `json:"plan,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies first-party HS256 session tokens.
type JWTManager struct {
	secret   []byte
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var (
	_ TokenVerifierInterface = (*JWTManager)(nil)
	_ TokenSignerInterface   = (*JWTManager)(nil)
)

func NewJWTManager(
	secret string,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (m *JWTManager) SignToken(userID, email, plan string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Plan:  plan,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.JWTManager.VerifyToken")
	defer span.End()

	token, err := jwt.ParseWithClaims(
		rawToken,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		m.logger.Security().AuthnFailure("unknown")
		return "", fmt.Errorf("token carries no subject")
	}

	return claims.Subject, nil
}
