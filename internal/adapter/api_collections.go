// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/curllabs/curllabs-client/models"
)

type productsAPI struct {
	resource[models.Product, models.ProductCreate, models.ProductUpdate]
}

// NewProductsAPI returns the [ProductsAPI] bound to client.
func NewProductsAPI(client *SessionClient) ProductsAPI {
	return &productsAPI{resource[models.Product, models.ProductCreate, models.ProductUpdate]{client: client, path: "/products"}}
}

func (p *productsAPI) List(ctx context.Context) ([]models.Product, error) {
	return p.list(ctx, nil)
}

type routinesAPI struct {
	resource[models.Routine, models.RoutineCreate, models.RoutineUpdate]
}

// NewRoutinesAPI returns the [RoutinesAPI] bound to client.
func NewRoutinesAPI(client *SessionClient) RoutinesAPI {
	return &routinesAPI{resource[models.Routine, models.RoutineCreate, models.RoutineUpdate]{client: client, path: "/routines"}}
}

func (r *routinesAPI) List(ctx context.Context) ([]models.Routine, error) {
	return r.list(ctx, nil)
}

type routineLogsAPI struct {
	resource[models.RoutineLog, models.RoutineLogCreate, models.RoutineLogUpdate]
}

// NewRoutineLogsAPI returns the [RoutineLogsAPI] bound to client.
func NewRoutineLogsAPI(client *SessionClient) RoutineLogsAPI {
	return &routineLogsAPI{resource[models.RoutineLog, models.RoutineLogCreate, models.RoutineLogUpdate]{client: client, path: "/routine-logs"}}
}

func (r *routineLogsAPI) List(ctx context.Context, filter models.RoutineLogFilter) ([]models.RoutineLog, error) {
	return r.list(ctx, filter.Query())
}

type outcomesAPI struct {
	resource[models.Outcome, models.OutcomeCreate, models.OutcomeUpdate]
}

// NewOutcomesAPI returns the [OutcomesAPI] bound to client.
func NewOutcomesAPI(client *SessionClient) OutcomesAPI {
	return &outcomesAPI{resource[models.Outcome, models.OutcomeCreate, models.OutcomeUpdate]{client: client, path: "/outcomes"}}
}

func (o *outcomesAPI) List(ctx context.Context) ([]models.Outcome, error) {
	return o.list(ctx, nil)
}
