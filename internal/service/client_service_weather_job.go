// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/workers"
)

// NewWeatherJob returns a worker that captures the signed-in user's weather
// every interval. Runs without a signed-in user or a profile location are
// skipped quietly.
func NewWeatherJob(weather WeatherService, interval time.Duration, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic("weather", interval, func(ctx context.Context) error {
		reading, err := weather.Capture(ctx)
		switch {
		case errors.Is(err, ErrNoLocation), errors.Is(err, ErrNotSignedIn):
			log.Debug().Err(err).Msg("weather capture skipped")
			return nil
		case err != nil:
			return err
		}

		log.Debug().
			Str("location", reading.Location).
			Float64("humidity", reading.Humidity).
			Msg("weather captured")
		return nil
	}, log)
}
