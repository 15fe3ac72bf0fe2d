// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/curllabs/curllabs-client/models"
)

// DefaultTrendDays is the trend window used when none is given.
const DefaultTrendDays = 30

type dashboardAPI struct {
	client *SessionClient
}

// NewDashboardAPI returns the [DashboardAPI] bound to client.
func NewDashboardAPI(client *SessionClient) DashboardAPI {
	return &dashboardAPI{client: client}
}

func (d *dashboardAPI) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := d.client.Do(ctx, Request{Method: http.MethodGet, Path: "/dashboard/stats", Result: &stats})
	return stats, err
}

func (d *dashboardAPI) Trends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}

	var trends models.Trends
	err := d.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/dashboard/trends",
		Query:  map[string]string{"days": strconv.Itoa(days)},
		Result: &trends,
	})
	return trends.Trends, err
}

func (d *dashboardAPI) Insights(ctx context.Context) ([]models.Insight, error) {
	var insights models.Insights
	err := d.client.Do(ctx, Request{Method: http.MethodGet, Path: "/dashboard/insights", Result: &insights})
	return insights.Insights, err
}
