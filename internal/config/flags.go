// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a backend address (e.g. http://localhost:8000)
//	-api-prefix path prefix of every endpoint (e.g. /api/v1)
//	-request-timeout request timeout (e.g. "15s")
//	-d SQLite DSN of the local credential store
//	-log-file client log file
//	-weather-interval how often to capture today's weather (e.g. "6h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var (
		address         string
		apiPrefix       string
		requestTimeout  time.Duration
		databaseDSN     string
		logFile         string
		weatherInterval time.Duration
		jsonConfigPath  string
	)

	flag.StringVar(&address, "a", "", "Backend address")
	flag.StringVar(&apiPrefix, "api-prefix", "", "API path prefix")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite DSN")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.DurationVar(&weatherInterval, "weather-interval", 0, "Weather capture interval (e.g., 6h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			APIPrefix:      apiPrefix,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			WeatherInterval: weatherInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
