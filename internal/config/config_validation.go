// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only fields that cannot be
// recovered from defaults are checked here; the client view is validated by
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.APIPrefix != "" && !strings.HasPrefix(cfg.Adapter.APIPrefix, "/") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.WeatherInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
