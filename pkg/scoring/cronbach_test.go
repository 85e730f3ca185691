// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCronbachAlpha(t *testing.T) {
	testCases := []struct {
		name   string
		matrix [][]float64
		want   float64
	}{
		{
			name:   "perfectly consistent items",
			matrix: [][]float64{{4, 4, 4}, {2, 2, 2}},
			want:   1,
		},
		{
			name:   "inconsistent items",
			matrix: [][]float64{{4, 2}, {2, 3}, {3, 4}},
			want:   -2,
		},
		{
			name:   "too few respondents",
			matrix: [][]float64{{4, 4, 4}},
			want:   0,
		},
		{
			name:   "too few items",
			matrix: [][]float64{{4}, {2}},
			want:   0,
		},
		{
			name:   "zero total variance",
			matrix: [][]float64{{1, 5}, {5, 1}},
			want:   0,
		},
		{
			name:   "empty matrix",
			matrix: nil,
			want:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CronbachAlpha(tc.matrix), 1e-9)
		})
	}
}
