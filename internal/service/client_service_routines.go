// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

type clientRoutineService struct {
	routines  adapter.RoutinesAPI
	validator validators.Validator
}

func NewClientRoutineService(routines adapter.RoutinesAPI, validator validators.Validator) RoutineService {
	return &clientRoutineService{routines: routines, validator: validator}
}

func (s *clientRoutineService) List(ctx context.Context) ([]models.Routine, error) {
	routines, err := s.routines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", mapAdapterError(err))
	}
	for i := range routines {
		sortSteps(routines[i].Steps)
	}
	return routines, nil
}

func (s *clientRoutineService) Get(ctx context.Context, id int64) (models.Routine, error) {
	if id <= 0 {
		return models.Routine{}, ErrInvalidID
	}

	routine, err := s.routines.Get(ctx, id)
	if err != nil {
		return models.Routine{}, fmt.Errorf("get routine %d: %w", id, mapAdapterError(err))
	}
	sortSteps(routine.Steps)
	return routine, nil
}

func (s *clientRoutineService) Create(ctx context.Context, routine models.RoutineCreate) (models.Routine, error) {
	routine.Name = strings.TrimSpace(routine.Name)
	routine.Steps = normalizeSteps(routine.Steps)

	if err := s.validator.Validate(ctx, routine); err != nil {
		return models.Routine{}, fmt.Errorf("routine validation: %w", err)
	}

	created, err := s.routines.Create(ctx, routine)
	if err != nil {
		return models.Routine{}, fmt.Errorf("create routine: %w", mapAdapterError(err))
	}
	sortSteps(created.Steps)
	return created, nil
}

func (s *clientRoutineService) Update(ctx context.Context, id int64, update models.RoutineUpdate) (models.Routine, error) {
	if id <= 0 {
		return models.Routine{}, ErrInvalidID
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	update.Steps = normalizeSteps(update.Steps)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Routine{}, fmt.Errorf("routine validation: %w", err)
	}

	updated, err := s.routines.Update(ctx, id, update)
	if err != nil {
		return models.Routine{}, fmt.Errorf("update routine %d: %w", id, mapAdapterError(err))
	}
	sortSteps(updated.Steps)
	return updated, nil
}

func (s *clientRoutineService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.routines.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete routine %d: %w", id, mapAdapterError(err))
	}
	return nil
}

func sortSteps(steps []models.RoutineStep) {
	slices.SortStableFunc(steps, func(a, b models.RoutineStep) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// normalizeSteps trims the steps and renumbers them 1..n in their current
// order.
func normalizeSteps(steps []models.RoutineStep) []models.RoutineStep {
	if steps == nil {
		return nil
	}

	out := slices.Clone(steps)
	sortSteps(out)
	for i := range out {
		out[i].StepType = strings.TrimSpace(out[i].StepType)
		out[i].Notes = strings.TrimSpace(out[i].Notes)
		out[i].Order = i + 1
	}
	return out
}
