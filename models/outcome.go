// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Rating bounds shared by frizz, definition and softness.
const (
	MinRating = 1
	MaxRating = 5
)

// Outcome is the user's rating of how a logged routine turned out.
type Outcome struct {
	ID           int64     `json:"id"`
	RoutineLogID int64     `json:"routine_log_id"`
	Frizz        int       `json:"frizz"`
	Definition   int       `json:"definition"`
	Softness     int       `json:"softness"`
	HoldHours    *float64  `json:"hold_hours,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	OverallScore float64   `json:"overall_score"`
	RatedAt      time.Time `json:"rated_at"`
}

// OutcomeCreate is the body of POST /outcomes.
type OutcomeCreate struct {
	RoutineLogID int64    `json:"routine_log_id" validate:"required,gt=0"`
	Frizz        int      `json:"frizz" validate:"required,min=1,max=5"`
	Definition   int      `json:"definition" validate:"required,min=1,max=5"`
	Softness     int      `json:"softness" validate:"required,min=1,max=5"`
	HoldHours    *float64 `json:"hold_hours,omitempty" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes,omitempty"`
}

// OutcomeUpdate is the body of PUT /outcomes/{id}.
type OutcomeUpdate struct {
	Frizz      *int     `json:"frizz,omitempty" validate:"omitempty,min=1,max=5"`
	Definition *int     `json:"definition,omitempty" validate:"omitempty,min=1,max=5"`
	Softness   *int     `json:"softness,omitempty" validate:"omitempty,min=1,max=5"`
	HoldHours  *float64 `json:"hold_hours,omitempty" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes,omitempty"`
}

// OverallScore mirrors the backend's scoring so the client can preview a
// rating before it is saved. Frizz is inverted (1 is best) and weighted 40%,
// definition and softness 30% each, scaled to 0..5. Hold time adds up to one
// point (24 hours or more) and the result is capped at 5.
func OverallScore(frizz, definition, softness int, holdHours *float64) float64 {
	frizzScore := float64(6-frizz) / 5.0
	definitionScore := float64(definition) / 5.0
	softnessScore := float64(softness) / 5.0

	base := (frizzScore*0.4 + definitionScore*0.3 + softnessScore*0.3) * 5
	if holdHours == nil || *holdHours == 0 {
		return base
	}

	bonus := math.Min(*holdHours/24.0, 1.0)
	return math.Min(base+bonus, 5.0)
}

// Preview returns the score this outcome would receive.
func (o OutcomeCreate) Preview() float64 {
	return OverallScore(o.Frizz, o.Definition, o.Softness, o.HoldHours)
}
