// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package assessment scores the operational maturity of systems: owners rate
// each area on a 1–5 level and the weighted result lands on a 0–100 scale.
package assessment

// Area is one rated aspect of a system. Weights skew the overall score
// toward the areas that matter most for trustworthy operation.
type Area struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Areas is the fixed catalogue every assessment run answers against.
var Areas = []Area{
	{ID: "ownership", Name: "Ownership and accountability", Weight: 2},
	{ID: "data-quality", Name: "Data quality controls", Weight: 2},
	{ID: "monitoring", Name: "Monitoring and alerting", Weight: 1.5},
	{ID: "access-control", Name: "Access control", Weight: 1.5},
	{ID: "documentation", Name: "Documentation", Weight: 1},
	{ID: "lifecycle", Name: "Change and lifecycle management", Weight: 1},
}

// AreaByID resolves an area from the catalogue.
func AreaByID(id string) (Area, bool) {
	for _, a := range Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}
