// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Survey run modes.
const (
	ModeExplorer = "explorer"
	ModeOrg      = "org"
)

// Survey run statuses.
const (
	StatusDraft  = "draft"
	StatusLive   = "live"
	StatusClosed = "closed"
)

// Assessment run statuses.
const (
	AssessmentPending   = "pending"
	AssessmentCompleted = "completed"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	Plan         string    `db:"plan" json:"plan"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type SurveyRun struct {
	ID        string     `db:"id" json:"id"`
	OwnerID   string     `db:"owner_id" json:"owner_id"`
	Mode      string     `db:"mode" json:"mode"`
	Title     string     `db:"title" json:"title"`
	Status    string     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ClosedAt  *time.Time `db:"closed_at" json:"closed_at,omitempty"`
}

type Question struct {
	ID        string `db:"id" json:"id"`
	Dimension string `db:"dimension" json:"dimension"`
	Prompt    string `db:"prompt" json:"prompt"`
	Position  int    `db:"position" json:"position"`
	Reversed  bool   `db:"reversed" json:"reversed"`
}

type Invite struct {
	Token     string     `db:"token" json:"token"`
	RunID     string     `db:"run_id" json:"run_id"`
	Team      string     `db:"team" json:"team,omitempty"`
	Level     string     `db:"level" json:"level,omitempty"`
	Location  string     `db:"location" json:"location,omitempty"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type Response struct {
	ID          string    `db:"id" json:"id"`
	RunID       string    `db:"run_id" json:"run_id"`
	InviteToken string    `db:"invite_token" json:"invite_token"`
	QuestionID  string    `db:"question_id" json:"question_id"`
	Value       int       `db:"value" json:"value"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DimensionScore is a read-only aggregate from v_dimension_scores.
type DimensionScore struct {
	Dimension string  `db:"dimension" json:"dimension"`
	N         int     `db:"n" json:"n"`
	Mean      float64 `db:"mean" json:"mean"`
	Score     float64 `db:"score" json:"score"`
}

// RunScore is the derived trust score for one survey run.
type RunScore struct {
	RunID       string           `json:"run_id"`
	Respondents int              `json:"respondents"`
	TrustIndex  float64          `json:"trust_index"`
	Alpha       float64          `json:"alpha,omitempty"`
	Dimensions  []DimensionScore `json:"dimensions,omitempty"`
	ComputedAt  time.Time        `json:"computed_at"`
}

type System struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AssessmentRun struct {
	ID        string    `db:"id" json:"id"`
	SystemID  string    `db:"system_id" json:"system_id"`
	Version   int       `db:"version" json:"version"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AssessmentAnswer struct {
	RunID     string    `db:"run_id" json:"run_id"`
	AreaID    string    `db:"area_id" json:"area_id"`
	Level     int       `db:"level" json:"level"`
	Evidence  string    `db:"evidence" json:"evidence,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RecentRun is one entry in a user's recently viewed run history.
type RecentRun struct {
	RunID    string    `json:"run_id"`
	Title    string    `json:"title"`
	ViewedAt time.Time `json:"viewed_at"`
}
