// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WeatherData is a daily weather snapshot stored for the user's location.
type WeatherData struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        Date      `json:"date"`
	Location    string    `json:"location"`
	Humidity    float64   `json:"humidity"`
	DewPoint    float64   `json:"dew_point"`
	Temperature float64   `json:"temperature"`
	WindSpeed   *float64  `json:"wind_speed,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WeatherRange narrows GET /weather.
type WeatherRange struct {
	StartDate Date
	EndDate   Date
}

// Query renders the range as query parameters.
func (r WeatherRange) Query() map[string]string {
	q := make(map[string]string, 2)
	if !r.StartDate.IsZero() {
		q["start_date"] = r.StartDate.String()
	}
	if !r.EndDate.IsZero() {
		q["end_date"] = r.EndDate.String()
	}
	return q
}
