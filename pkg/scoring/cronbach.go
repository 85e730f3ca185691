// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package scoring

// CronbachAlpha computes the reliability coefficient for an item score
// matrix with one row per respondent and one column per item. Reverse-scored
// items must already be flipped. Returns 0 when the matrix is too small for
// the statistic to be defined (fewer than 2 respondents or 2 items) or when
// total score variance is zero.
func CronbachAlpha(matrix [][]float64) float64 {
	if len(matrix) < 2 || len(matrix[0]) < 2 {
		return 0
	}

	n := len(matrix)
	k := len(matrix[0])

	itemVarSum := 0.0
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = matrix[i][j]
		}
		itemVarSum += variance(col)
	}

	totals := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			totals[i] += matrix[i][j]
		}
	}
	totalVar := variance(totals)
	if totalVar == 0 {
		return 0
	}

	return float64(k) / float64(k-1) * (1 - itemVarSum/totalVar)
}

// variance is the population variance.
func variance(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
