// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package survey

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	tokenLength   = 22
)

// newInviteToken returns an opaque base62 token with ~131 bits of entropy.
func newInviteToken() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
