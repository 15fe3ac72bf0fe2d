// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the curllabs
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is where the client writes its JSON log. Relative paths are
	// resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path, or ":memory:" to keep credentials only for
	// the lifetime of the process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings used to reach the backend API.
type Adapter struct {
	// HTTPAddress is the base address of the backend
	// (e.g. "http://localhost:8000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIPrefix is prepended to every endpoint path (e.g. "/api/v1").
	// Env: ADAPTER_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`

	// RequestTimeout bounds every outbound request, including the
	// credential refresh exchange.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// WeatherInterval is how often today's weather is captured for the
	// signed-in user's location.
	// Env: WORKERS_WEATHER_INTERVAL
	WeatherInterval time.Duration `env:"WEATHER_INTERVAL"`
}

// Defaults applied underneath every other configuration source.
const (
	DefaultHTTPAddress     = "http://localhost:8000"
	DefaultAPIPrefix       = "/api/v1"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "curllabs.db"
	DefaultLogFile         = "curllabs.log"
	DefaultWeatherInterval = 6 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: DefaultLogFile,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			APIPrefix:      DefaultAPIPrefix,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			WeatherInterval: DefaultWeatherInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
