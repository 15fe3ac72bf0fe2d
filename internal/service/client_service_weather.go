// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/models"
)

type clientWeatherService struct {
	weather adapter.WeatherAPI
	auth    AuthService
	now     func() time.Time
}

// NewClientWeatherService reads the capture location from the user cached by
// auth.
func NewClientWeatherService(weather adapter.WeatherAPI, auth AuthService) WeatherService {
	return &clientWeatherService{weather: weather, auth: auth, now: time.Now}
}

func (s *clientWeatherService) List(ctx context.Context, dateRange models.WeatherRange) ([]models.WeatherData, error) {
	readings, err := s.weather.List(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("list weather: %w", mapAdapterError(err))
	}
	return readings, nil
}

func (s *clientWeatherService) Capture(ctx context.Context) (models.WeatherData, error) {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return models.WeatherData{}, ErrNotSignedIn
	}
	if blank(user.Location) {
		return models.WeatherData{}, ErrNoLocation
	}

	reading, err := s.weather.FetchAndSave(ctx, models.NewDate(s.now()), *user.Location)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("capture weather: %w", mapAdapterError(err))
	}
	return reading, nil
}
