// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"math"
	"testing"
)

func TestRescaleBounds(t *testing.T) {
	if got := Rescale(1); got != 0 {
		t.Errorf("expected mean 1 to rescale to 0, got %v", got)
	}
	if got := Rescale(5); got != 100 {
		t.Errorf("expected mean 5 to rescale to 100, got %v", got)
	}
	if got := Rescale(3); got != 50 {
		t.Errorf("expected mean 3 to rescale to 50, got %v", got)
	}
}

func TestRescaleMonotonic(t *testing.T) {
	prev := Rescale(1)
	for mean := 1.1; mean <= 5.0; mean += 0.1 {
		cur := Rescale(mean)
		if cur <= prev {
			t.Fatalf("rescale not monotonic at mean %.1f: %v <= %v", mean, cur, prev)
		}
		if cur < 0 || cur > 100 {
			t.Fatalf("rescale out of bounds at mean %.1f: %v", mean, cur)
		}
		prev = cur
	}
}

func TestReverseScore(t *testing.T) {
	testCases := []struct {
		raw  int
		want int
	}{
		{raw: 1, want: 5},
		{raw: 2, want: 4},
		{raw: 3, want: 3},
		{raw: 4, want: 2},
		{raw: 5, want: 1},
	}

	for _, tc := range testCases {
		if got := ReverseScore(likertPoints, tc.raw); got != tc.want {
			t.Errorf("ReverseScore(5, %d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestRoundScore(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{in: 62.5, want: 62.5},
		{in: 62.54, want: 62.5},
		{in: 62.55, want: 62.6},
		{in: 62.449, want: 62.4},
		{in: 0, want: 0},
		{in: 100, want: 100},
	}

	for _, tc := range testCases {
		if got := roundScore(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("roundScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
