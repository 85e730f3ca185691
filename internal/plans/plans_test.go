// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package plans

import (
	"testing"
)

func TestCanCreateRun(t *testing.T) {
	testCases := []struct {
		name    string
		plan    string
		current int
		want    bool
	}{
		{name: "free under cap", plan: PlanFree, current: 0, want: true},
		{name: "free at cap", plan: PlanFree, current: 1, want: false},
		{name: "free over cap", plan: PlanFree, current: 5, want: false},
		{name: "pro under cap", plan: PlanPro, current: 9, want: true},
		{name: "pro at cap", plan: PlanPro, current: 10, want: false},
		{name: "enterprise unlimited", plan: PlanEnterprise, current: 10000, want: true},
		{name: "unknown plan falls back to free", plan: "bogus", current: 1, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCreateRun(tc.plan, tc.current); got != tc.want {
				t.Errorf("CanCreateRun(%q, %d) = %v, want %v", tc.plan, tc.current, got, tc.want)
			}
		})
	}
}

func TestCanCreateSystem(t *testing.T) {
	if !CanCreateSystem(PlanFree, 0) {
		t.Error("free plan should allow the first system")
	}
	if CanCreateSystem(PlanFree, 1) {
		t.Error("free plan should cap systems at 1")
	}
	if !CanCreateSystem(PlanEnterprise, 500) {
		t.Error("enterprise plan should be unlimited")
	}
}

func TestHasFullBreakdown(t *testing.T) {
	if HasFullBreakdown(PlanFree) {
		t.Error("free plan should not unlock the full breakdown")
	}
	if !HasFullBreakdown(PlanPro) || !HasFullBreakdown(PlanEnterprise) {
		t.Error("paid plans should unlock the full breakdown")
	}
}
