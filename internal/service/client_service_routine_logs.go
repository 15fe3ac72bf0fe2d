// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

type clientRoutineLogService struct {
	logs      adapter.RoutineLogsAPI
	outcomes  adapter.OutcomesAPI
	validator validators.Validator
}

func NewClientRoutineLogService(logs adapter.RoutineLogsAPI, outcomes adapter.OutcomesAPI, validator validators.Validator) RoutineLogService {
	return &clientRoutineLogService{logs: logs, outcomes: outcomes, validator: validator}
}

func (s *clientRoutineLogService) List(ctx context.Context, filter models.RoutineLogFilter) ([]models.RoutineLog, error) {
	logs, err := s.logs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list routine logs: %w", mapAdapterError(err))
	}
	return logs, nil
}

func (s *clientRoutineLogService) Create(ctx context.Context, log models.RoutineLogCreate) (models.RoutineLog, error) {
	log.Notes = optional(log.Notes)
	if err := s.validator.Validate(ctx, log); err != nil {
		return models.RoutineLog{}, fmt.Errorf("routine log validation: %w", err)
	}

	created, err := s.logs.Create(ctx, log)
	if err != nil {
		return models.RoutineLog{}, fmt.Errorf("create routine log: %w", mapAdapterError(err))
	}
	return created, nil
}

func (s *clientRoutineLogService) Update(ctx context.Context, id int64, update models.RoutineLogUpdate) (models.RoutineLog, error) {
	if id <= 0 {
		return models.RoutineLog{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.RoutineLog{}, fmt.Errorf("routine log validation: %w", err)
	}

	updated, err := s.logs.Update(ctx, id, update)
	if err != nil {
		return models.RoutineLog{}, fmt.Errorf("update routine log %d: %w", id, mapAdapterError(err))
	}
	return updated, nil
}

func (s *clientRoutineLogService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete routine log %d: %w", id, mapAdapterError(err))
	}
	return nil
}

func (s *clientRoutineLogService) RateOutcome(ctx context.Context, outcome models.OutcomeCreate) (models.Outcome, error) {
	outcome.Notes = optional(outcome.Notes)
	if err := s.validator.Validate(ctx, outcome); err != nil {
		return models.Outcome{}, fmt.Errorf("outcome validation: %w", err)
	}

	created, err := s.outcomes.Create(ctx, outcome)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("rate routine log %d: %w", outcome.RoutineLogID, mapAdapterError(err))
	}
	return created, nil
}
