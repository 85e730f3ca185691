// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// NoopVerifier accepts every token and returns it verbatim as the user ID.
// Test use only.
type NoopVerifier struct{}

var _ TokenVerifierInterface = (*NoopVerifier)(nil)

func NewNoopVerifier() *NoopVerifier {
	return new(NoopVerifier)
}

func (v *NoopVerifier) VerifyToken(_ context.Context, rawToken string) (string, error) {
	return rawToken, nil
}
