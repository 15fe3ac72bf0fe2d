// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AverageScores holds mean outcome ratings; nil means no data yet.
type AverageScores struct {
	Frizz      *float64 `json:"frizz"`
	Definition *float64 `json:"definition"`
	Softness   *float64 `json:"softness"`
	Overall    *float64 `json:"overall"`
	HoldHours  *float64 `json:"hold_hours"`
}

// BestRoutine is the routine with the highest mean score (at least three
// rated logs).
type BestRoutine struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
	LogCount     int     `json:"log_count"`
}

// BestProduct is one entry of the top-products list.
type BestProduct struct {
	ID          int64   `json:"id"`
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	SuccessRate float64 `json:"success_rate"`
	UsageCount  int     `json:"usage_count"`
}

// DashboardStats is the body of GET /dashboard/stats.
type DashboardStats struct {
	TotalLogs     int           `json:"total_logs"`
	TotalOutcomes int           `json:"total_outcomes"`
	AverageScores AverageScores `json:"average_scores"`
	BestRoutine   *BestRoutine  `json:"best_routine"`
	BestProducts  []BestProduct `json:"best_products"`
}

// TrendPoint is the per-day mean of outcome ratings.
type TrendPoint struct {
	Date       string  `json:"date"`
	Frizz      float64 `json:"frizz"`
	Definition float64 `json:"definition"`
	Softness   float64 `json:"softness"`
	Overall    float64 `json:"overall"`
}

// Trends is the body of GET /dashboard/trends.
type Trends struct {
	Trends []TrendPoint `json:"trends"`
}

// Insight is a single observation produced by the backend.
type Insight struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Confidence string `json:"confidence"`
}

// Insights is the body of GET /dashboard/insights.
type Insights struct {
	Insights []Insight `json:"insights"`
}

// DashboardOverview bundles everything the dashboard screen shows.
type DashboardOverview struct {
	Stats    DashboardStats
	Trends   []TrendPoint
	Insights []Insight
}
