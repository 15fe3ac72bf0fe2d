// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/curllabs/curllabs-client/models"
)

type weatherAPI struct {
	client *SessionClient
}

// NewWeatherAPI returns the [WeatherAPI] bound to client.
func NewWeatherAPI(client *SessionClient) WeatherAPI {
	return &weatherAPI{client: client}
}

func (w *weatherAPI) List(ctx context.Context, dateRange models.WeatherRange) ([]models.WeatherData, error) {
	items := make([]models.WeatherData, 0)
	err := w.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/weather",
		Query:  dateRange.Query(),
		Result: &items,
	})
	return items, err
}

// FetchAndSave POSTs /weather/fetch with target_date and, when given,
// location as query parameters and no body.
func (w *weatherAPI) FetchAndSave(ctx context.Context, date models.Date, location string) (models.WeatherData, error) {
	query := map[string]string{"target_date": date.String()}
	if location = strings.TrimSpace(location); location != "" {
		query["location"] = location
	}

	var weather models.WeatherData
	err := w.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/weather/fetch",
		Query:  query,
		Result: &weather,
	})
	return weather, err
}
