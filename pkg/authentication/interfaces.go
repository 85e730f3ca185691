// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type TokenSignerInterface interface {
	SignToken(userID, email, plan string) (string, error)
}
