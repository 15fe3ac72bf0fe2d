// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RoutineStep is a single step of a routine template.
type RoutineStep struct {
	StepType  string `json:"step_type" validate:"required"`
	ProductID *int64 `json:"product_id,omitempty"`
	Order     int    `json:"order" validate:"gte=1"`
	Notes     string `json:"notes,omitempty"`
}

// Routine is a reusable wash-day template.
type Routine struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"user_id"`
	Name         string        `json:"name"`
	IsTemplate   bool          `json:"is_template"`
	IsPublic     bool          `json:"is_public"`
	Steps        []RoutineStep `json:"steps"`
	MethodTags   []string      `json:"method_tags,omitempty"`
	DryingMethod *string       `json:"drying_method,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}

// RoutineCreate is the body of POST /routines.
type RoutineCreate struct {
	Name         string        `json:"name" validate:"required"`
	IsTemplate   bool          `json:"is_template"`
	IsPublic     bool          `json:"is_public"`
	Steps        []RoutineStep `json:"steps" validate:"dive"`
	MethodTags   []string      `json:"method_tags,omitempty"`
	DryingMethod *string       `json:"drying_method,omitempty"`
}

// RoutineUpdate is the body of PUT /routines/{id}. Nil fields are unchanged.
type RoutineUpdate struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	IsTemplate   *bool         `json:"is_template,omitempty"`
	IsPublic     *bool         `json:"is_public,omitempty"`
	Steps        []RoutineStep `json:"steps,omitempty" validate:"omitempty,dive"`
	MethodTags   []string      `json:"method_tags,omitempty"`
	DryingMethod *string       `json:"drying_method,omitempty"`
}
