// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/models"
)

type clientDashboardService struct {
	dashboard adapter.DashboardAPI
}

func NewClientDashboardService(dashboard adapter.DashboardAPI) DashboardService {
	return &clientDashboardService{dashboard: dashboard}
}

// Overview loads the three dashboard sections concurrently and fails as a
// whole if any of them fails.
func (s *clientDashboardService) Overview(ctx context.Context, days int) (models.DashboardOverview, error) {
	var overview models.DashboardOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		overview.Stats, err = s.dashboard.Stats(gctx)
		return wrapSection("stats", err)
	})
	g.Go(func() (err error) {
		overview.Trends, err = s.dashboard.Trends(gctx, days)
		return wrapSection("trends", err)
	})
	g.Go(func() (err error) {
		overview.Insights, err = s.dashboard.Insights(gctx)
		return wrapSection("insights", err)
	})

	if err := g.Wait(); err != nil {
		return models.DashboardOverview{}, err
	}
	return overview, nil
}

func wrapSection(section string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load dashboard %s: %w", section, mapAdapterError(err))
}
