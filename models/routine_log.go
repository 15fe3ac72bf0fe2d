// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// RoutineLog records one day on which a routine (or an ad-hoc set of
// products) was used.
type RoutineLog struct {
	ID            int64              `json:"id"`
	UserID        int64              `json:"user_id"`
	RoutineID     *int64             `json:"routine_id,omitempty"`
	Date          Date               `json:"date"`
	Time          *string            `json:"time,omitempty"`
	ProductsUsed  map[string][]int64 `json:"products_used,omitempty"`
	WashDay       bool               `json:"wash_day"`
	StylingMethod *string            `json:"styling_method,omitempty"`
	DryingMethod  *string            `json:"drying_method,omitempty"`
	TimeSpent     *int               `json:"time_spent,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	PhotoURLs     []string           `json:"photo_urls,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
}

// RoutineLogCreate is the body of POST /routine-logs.
type RoutineLogCreate struct {
	RoutineID     *int64             `json:"routine_id,omitempty"`
	Date          Date               `json:"date" validate:"required"`
	Time          *string            `json:"time,omitempty"`
	ProductsUsed  map[string][]int64 `json:"products_used,omitempty"`
	WashDay       bool               `json:"wash_day"`
	StylingMethod *string            `json:"styling_method,omitempty"`
	DryingMethod  *string            `json:"drying_method,omitempty"`
	TimeSpent     *int               `json:"time_spent,omitempty" validate:"omitempty,gte=0"`
	Notes         *string            `json:"notes,omitempty"`
	PhotoURLs     []string           `json:"photo_urls,omitempty" validate:"omitempty,dive,url"`
}

// RoutineLogUpdate is the body of PUT /routine-logs/{id}.
type RoutineLogUpdate struct {
	Date          *Date              `json:"date,omitempty"`
	Time          *string            `json:"time,omitempty"`
	ProductsUsed  map[string][]int64 `json:"products_used,omitempty"`
	WashDay       *bool              `json:"wash_day,omitempty"`
	StylingMethod *string            `json:"styling_method,omitempty"`
	DryingMethod  *string            `json:"drying_method,omitempty"`
	TimeSpent     *int               `json:"time_spent,omitempty" validate:"omitempty,gte=0"`
	Notes         *string            `json:"notes,omitempty"`
	PhotoURLs     []string           `json:"photo_urls,omitempty" validate:"omitempty,dive,url"`
}

// RoutineLogFilter narrows GET /routine-logs. Zero values are not sent.
type RoutineLogFilter struct {
	Skip      int
	Limit     int
	StartDate Date
	EndDate   Date
}

// Query renders the filter as query parameters.
func (f RoutineLogFilter) Query() map[string]string {
	q := make(map[string]string, 4)
	if f.Skip > 0 {
		q["skip"] = itoa(f.Skip)
	}
	if f.Limit > 0 {
		q["limit"] = itoa(f.Limit)
	}
	if !f.StartDate.IsZero() {
		q["start_date"] = f.StartDate.String()
	}
	if !f.EndDate.IsZero() {
		q["end_date"] = f.EndDate.String()
	}
	return q
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
