// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curllabs/curllabs-client/models"
)

func ptr[T any](v T) *T { return &v }

func TestStructValidator_Valid(t *testing.T) {
	v := NewStructValidator()
	date, err := models.ParseDate("2026-10-19")
	require.NoError(t, err)

	tests := []struct {
		name string
		obj  any
	}{
		{"sign up", models.SignUp{Email: "alice@example.com", Password: "12345678"}},
		{"sign in pointer", &models.SignIn{Email: "alice@example.com", Password: "x"}},
		{"product", models.ProductCreate{Brand: "Bounce", Name: "Curl Cream", Type: models.ProductCream, Ingredients: []string{"aloe"}}},
		{"routine", models.RoutineCreate{Name: "Wash day", Steps: []models.RoutineStep{{StepType: "cleanse", Order: 1}}}},
		{"routine log", models.RoutineLogCreate{Date: date, TimeSpent: ptr(30)}},
		{"outcome", models.OutcomeCreate{RoutineLogID: 1, Frizz: 1, Definition: 5, Softness: 3, HoldHours: ptr(12.0)}},
		{"profile", models.UserProfile{Porosity: ptr("high"), Thickness: ptr("fine")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(context.Background(), tt.obj))
		})
	}
}

func TestStructValidator_Invalid(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name    string
		obj     any
		wantMsg string
	}{
		{
			name:    "missing product fields",
			obj:     models.ProductCreate{Brand: "Bounce"},
			wantMsg: "name is required; type is required",
		},
		{
			name:    "bad email and short password",
			obj:     models.SignUp{Email: "alice", Password: "123"},
			wantMsg: "email must be a valid email address; password must be at least 8 characters",
		},
		{
			name:    "rating out of range",
			obj:     models.OutcomeCreate{RoutineLogID: 1, Frizz: 6, Definition: 3, Softness: 3},
			wantMsg: "frizz must be at most 5",
		},
		{
			name:    "zero log date",
			obj:     models.RoutineLogCreate{},
			wantMsg: "date is required",
		},
		{
			name:    "porosity outside catalog",
			obj:     models.UserProfile{Porosity: ptr("extreme")},
			wantMsg: "porosity must be one of: low, medium, high",
		},
		{
			name:    "empty step type",
			obj:     models.RoutineCreate{Name: "Wash day", Steps: []models.RoutineStep{{Order: 1}}},
			wantMsg: "step_type is required",
		},
		{
			name:    "step order below one",
			obj:     models.RoutineCreate{Name: "Wash day", Steps: []models.RoutineStep{{StepType: "cleanse", Order: 0}}},
			wantMsg: "order must not be below 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestStructValidator_Fields(t *testing.T) {
	v := NewStructValidator()
	product := models.ProductCreate{Brand: "Bounce"}

	assert.NoError(t, v.Validate(context.Background(), product, "brand"))
	assert.ErrorIs(t, v.Validate(context.Background(), product, "Name"), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), product, "colour"), ErrUnknownField)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}
