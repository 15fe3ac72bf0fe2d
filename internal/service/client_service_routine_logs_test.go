// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curllabs/curllabs-client/internal/mock"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

func newTestRoutineLogSvc(t *testing.T) (RoutineLogService, *mock.MockRoutineLogsAPI, *mock.MockOutcomesAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogs := mock.NewMockRoutineLogsAPI(ctrl)
	mockOutcomes := mock.NewMockOutcomesAPI(ctrl)
	return NewClientRoutineLogService(mockLogs, mockOutcomes, validators.NewStructValidator()), mockLogs, mockOutcomes
}

func TestClientRoutineLogService_List_PassesFilter(t *testing.T) {
	svc, mockLogs, _ := newTestRoutineLogSvc(t)
	ctx := context.Background()
	filter := models.RoutineLogFilter{Skip: 20, Limit: 10}

	mockLogs.EXPECT().List(ctx, filter).Return([]models.RoutineLog{{ID: 1}}, nil)

	logs, err := svc.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestClientRoutineLogService_Create_RequiresDate(t *testing.T) {
	svc, _, _ := newTestRoutineLogSvc(t)

	_, err := svc.Create(context.Background(), models.RoutineLogCreate{WashDay: true})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "date is required")
}

func TestClientRoutineLogService_Create(t *testing.T) {
	svc, mockLogs, _ := newTestRoutineLogSvc(t)
	ctx := context.Background()
	today := models.NewDate(time.Now())
	blankNotes := "  "

	mockLogs.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.RoutineLogCreate) (models.RoutineLog, error) {
			assert.Nil(t, l.Notes)
			return models.RoutineLog{ID: 2, Date: l.Date, WashDay: l.WashDay}, nil
		},
	)

	log, err := svc.Create(ctx, models.RoutineLogCreate{Date: today, WashDay: true, Notes: &blankNotes})

	require.NoError(t, err)
	assert.Equal(t, today, log.Date)
}

func TestClientRoutineLogService_RateOutcome(t *testing.T) {
	svc, _, mockOutcomes := newTestRoutineLogSvc(t)
	ctx := context.Background()
	outcome := models.OutcomeCreate{RoutineLogID: 2, Frizz: 2, Definition: 4, Softness: 5}

	mockOutcomes.EXPECT().Create(ctx, outcome).Return(models.Outcome{ID: 1, RoutineLogID: 2, OverallScore: outcome.Preview()}, nil)

	got, err := svc.RateOutcome(ctx, outcome)

	require.NoError(t, err)
	assert.InDelta(t, 4.3, got.OverallScore, 1e-9)
}

func TestClientRoutineLogService_RateOutcome_OutOfRange(t *testing.T) {
	svc, _, _ := newTestRoutineLogSvc(t)

	tests := []models.OutcomeCreate{
		{RoutineLogID: 2, Frizz: 0, Definition: 3, Softness: 3},
		{RoutineLogID: 2, Frizz: 3, Definition: 6, Softness: 3},
		{RoutineLogID: 0, Frizz: 3, Definition: 3, Softness: 3},
	}

	for _, outcome := range tests {
		_, err := svc.RateOutcome(context.Background(), outcome)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
