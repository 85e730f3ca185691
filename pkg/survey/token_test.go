// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

import (
	"strings"
	"testing"
)

func TestNewInviteToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := newInviteToken()
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		if len(token) != tokenLength {
			t.Fatalf("expected %d chars, got %d", tokenLength, len(token))
		}
		for _, c := range token {
			if !strings.ContainsRune(tokenAlphabet, c) {
				t.Fatalf("token %q contains %q outside the alphabet", token, c)
			}
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
