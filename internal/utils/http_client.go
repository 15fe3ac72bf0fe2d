// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client that accepts JSON.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// NewBackendClient returns an HTTPClient bound to baseURL whose requests are
// bounded by timeout. A non-positive timeout leaves resty's default in place.
//
// Example usage:
//
//	client := utils.NewBackendClient("http://localhost:8000/api/v1", 15*time.Second)
//	resp, err := client.R().Get("/users/me")
func NewBackendClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}
