// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package scoring derives trust scores from survey responses: per-dimension
// means on a 0–100 scale, an overall index, and a reliability figure.
package scoring

import "math"

// likertPoints is the number of points on the answer scale.
const likertPoints = 5

// Rescale maps a mean on the 1–5 scale onto 0–100.
func Rescale(mean float64) float64 {
	return (mean - 1) / 4 * 100
}

// ReverseScore flips a raw value on a 1..points scale, so that 1 becomes
// points and points becomes 1.
func ReverseScore(points, raw int) int {
	return (points + 1) - raw
}

// roundScore rounds half away from zero to one decimal place.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
