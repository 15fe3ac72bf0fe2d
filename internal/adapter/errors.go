// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/curllabs/curllabs-client/internal/session"
)

// Errors mapped from backend HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrAuthenticationRequired is returned for a 401 when no refresh
	// credential is stored. It always wraps [ErrUnauthorized].
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrSessionExpired is returned when the refresh exchange failed and the
	// stored credentials were removed.
	ErrSessionExpired = session.ErrSessionExpired
)
