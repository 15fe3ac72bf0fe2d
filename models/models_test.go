// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore(t *testing.T) {
	hours := func(h float64) *float64 { return &h }

	tests := []struct {
		name       string
		frizz      int
		definition int
		softness   int
		hold       *float64
		want       float64
	}{
		{name: "best without hold", frizz: 1, definition: 5, softness: 5, want: 5},
		{name: "worst without hold", frizz: 5, definition: 1, softness: 1, want: 1},
		{name: "middle", frizz: 3, definition: 3, softness: 3, want: 3},
		{name: "half day hold", frizz: 3, definition: 3, softness: 3, hold: hours(12), want: 3.5},
		{name: "hold bonus capped at one", frizz: 3, definition: 3, softness: 3, hold: hours(72), want: 4},
		{name: "total capped at five", frizz: 1, definition: 5, softness: 5, hold: hours(24), want: 5},
		{name: "zero hold is no bonus", frizz: 3, definition: 3, softness: 3, hold: hours(0), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OverallScore(tt.frizz, tt.definition, tt.softness, tt.hold), 1e-9)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date  Date  `json:"date"`
		Maybe *Date `json:"maybe,omitempty"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-10-19"}`), &payload))
	assert.Equal(t, "2026-10-19", payload.Date.String())
	assert.Nil(t, payload.Maybe)

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-19"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &payload))
	assert.True(t, payload.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"19/10/2026"}`), &payload))
}

func TestNewDate_DropsClock(t *testing.T) {
	d := NewDate(time.Date(2026, 10, 19, 23, 30, 0, 0, time.FixedZone("X", 3*3600)))
	assert.Equal(t, "2026-10-19", d.String())
	assert.Equal(t, "", Date{}.String())
}

func TestRoutineLogFilter_Query(t *testing.T) {
	start, _ := ParseDate("2026-01-01")

	assert.Empty(t, RoutineLogFilter{}.Query())
	assert.Equal(t, map[string]string{"limit": "20", "start_date": "2026-01-01"},
		RoutineLogFilter{Limit: 20, StartDate: start}.Query())
}

func TestCredentials(t *testing.T) {
	assert.True(t, Credentials{Access: "a", Refresh: "r"}.Complete())
	assert.False(t, Credentials{Access: "a"}.Complete())
	assert.False(t, Credentials{Access: "a", Refresh: "  "}.Complete())
	assert.True(t, Credentials{}.Empty())
}

func TestNewCatalog(t *testing.T) {
	products := []Product{
		{ID: 1, Type: ProductGel},
		{ID: 2, Type: ProductShampoo, IsStarred: true},
		{ID: 3, Type: "clay mask"},
		{ID: 4, Type: ProductShampoo},
		{ID: 5, Type: ProductGel, IsStarred: true},
		{ID: 6, Type: ProductConditioner},
	}

	catalog := NewCatalog(products, "")

	assert.Equal(t, []int64{2, 5}, ids(catalog.Starred))
	require.Len(t, catalog.Groups, 3)
	assert.Equal(t, ProductShampoo, catalog.Groups[0].Type)
	assert.Equal(t, ProductConditioner, catalog.Groups[1].Type)
	assert.Equal(t, ProductGel, catalog.Groups[2].Type)
	assert.Equal(t, []int64{3}, ids(catalog.Other))
	assert.Equal(t, 6, catalog.Len())
	assert.Equal(t, []int64{2, 5, 4, 6, 1, 3}, ids(catalog.Flatten()))
}

func TestNewCatalog_Filter(t *testing.T) {
	products := []Product{
		{ID: 1, Type: ProductGel},
		{ID: 2, Type: ProductGel, IsStarred: true},
		{ID: 3, Type: "clay mask"},
		{ID: 4, Type: ProductOil},
	}

	gels := NewCatalog(products, ProductGel)
	assert.Equal(t, []int64{2}, ids(gels.Starred))
	require.Len(t, gels.Groups, 1)
	assert.Equal(t, []int64{1}, ids(gels.Groups[0].Products))
	assert.Empty(t, gels.Other)

	other := NewCatalog(products, OtherGroup)
	assert.Equal(t, []int64{3}, ids(other.Flatten()))

	assert.Zero(t, NewCatalog(nil, "").Len())
}

func ids(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
