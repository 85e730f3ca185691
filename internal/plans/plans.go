// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package plans holds the static per-plan limit table and gating helpers.
package plans

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Unlimited marks a resource with no cap.
const Unlimited = -1

type Limits struct {
	SurveyRuns int
	Systems    int
}

var limits = map[string]Limits{
	PlanFree:       {SurveyRuns: 1, Systems: 1},
	PlanPro:        {SurveyRuns: 10, Systems: 10},
	PlanEnterprise: {SurveyRuns: Unlimited, Systems: Unlimited},
}

// LimitsFor returns the limit table for a plan. Unknown plans get the free tier.
func LimitsFor(plan string) Limits {
	if l, ok := limits[plan]; ok {
		return l
	}
	return limits[PlanFree]
}

// IsValid reports whether plan names a known tier.
func IsValid(plan string) bool {
	_, ok := limits[plan]
	return ok
}

// CanCreateRun reports whether a plan allows creating another survey run given
// the current count of owned runs.
func CanCreateRun(plan string, current int) bool {
	return withinLimit(LimitsFor(plan).SurveyRuns, current)
}

// CanCreateSystem reports whether a plan allows creating another system.
func CanCreateSystem(plan string, current int) bool {
	return withinLimit(LimitsFor(plan).Systems, current)
}

// HasFullBreakdown reports whether a plan unlocks the per-dimension breakdown.
func HasFullBreakdown(plan string) bool {
	return plan == PlanPro || plan == PlanEnterprise
}

func withinLimit(limit, current int) bool {
	if limit == Unlimited {
		return true
	}
	return current < limit
}
