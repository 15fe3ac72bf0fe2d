// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/service"
)

var (
	ErrUserQuit        = errors.New("user quit the program")
	errNothingToCopy   = errors.New("nothing to copy")
	errNothingSelected = errors.New("nothing selected")
)

// humanizeError turns service errors into the text shown on screen.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrSessionExpired):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, service.ErrWrongCredentials):
		return "Incorrect email or password"
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already registered"
	case errors.Is(err, service.ErrNoLocation):
		return "Set a location in your profile first"
	case errors.Is(err, service.ErrNotFound):
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.Detail != "" {
			return statusErr.Detail
		}
		return "Not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
