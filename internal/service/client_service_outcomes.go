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

type clientOutcomeService struct {
	outcomes  adapter.OutcomesAPI
	validator validators.Validator
}

func NewClientOutcomeService(outcomes adapter.OutcomesAPI, validator validators.Validator) OutcomeService {
	return &clientOutcomeService{outcomes: outcomes, validator: validator}
}

func (s *clientOutcomeService) List(ctx context.Context) ([]models.Outcome, error) {
	outcomes, err := s.outcomes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", mapAdapterError(err))
	}
	return outcomes, nil
}

func (s *clientOutcomeService) Create(ctx context.Context, outcome models.OutcomeCreate) (models.Outcome, error) {
	if err := s.validator.Validate(ctx, outcome); err != nil {
		return models.Outcome{}, fmt.Errorf("outcome validation: %w", err)
	}

	created, err := s.outcomes.Create(ctx, outcome)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("create outcome: %w", mapAdapterError(err))
	}
	return created, nil
}

func (s *clientOutcomeService) Update(ctx context.Context, id int64, update models.OutcomeUpdate) (models.Outcome, error) {
	if id <= 0 {
		return models.Outcome{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Outcome{}, fmt.Errorf("outcome validation: %w", err)
	}

	updated, err := s.outcomes.Update(ctx, id, update)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("update outcome %d: %w", id, mapAdapterError(err))
	}
	return updated, nil
}

func (s *clientOutcomeService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.outcomes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete outcome %d: %w", id, mapAdapterError(err))
	}
	return nil
}
