// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/curllabs/curllabs-client/internal/config"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/utils"
)

// ServerAdapter bundles every backend API over one shared [SessionClient].
type ServerAdapter struct {
	Client *SessionClient

	Auth        AuthAPI
	Users       UsersAPI
	Products    ProductsAPI
	Routines    RoutinesAPI
	RoutineLogs RoutineLogsAPI
	Outcomes    OutcomesAPI
	Weather     WeatherAPI
	Dashboard   DashboardAPI
}

// NewHTTPServerAdapter builds the REST adapter. The base URL is the
// normalised adapterCfg.HTTPAddress joined with adapterCfg.APIPrefix; request
// timeouts come from adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, sess *session.Session, log *logger.Logger) (*ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	httpClient := utils.NewBackendClient(baseURL+normalizePrefix(adapterCfg.APIPrefix), adapterCfg.RequestTimeout)
	client := NewSessionClient(httpClient, sess, log)

	return &ServerAdapter{
		Client:      client,
		Auth:        NewAuthAPI(client),
		Users:       NewUsersAPI(client),
		Products:    NewProductsAPI(client),
		Routines:    NewRoutinesAPI(client),
		RoutineLogs: NewRoutineLogsAPI(client),
		Outcomes:    NewOutcomesAPI(client),
		Weather:     NewWeatherAPI(client),
		Dashboard:   NewDashboardAPI(client),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
