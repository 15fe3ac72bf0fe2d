// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/validators"
)

var (
	ErrNotSignedIn      = errors.New("not signed in")
	ErrWrongCredentials = errors.New("incorrect email or password")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNotFound         = errors.New("not found")
	ErrNoLocation       = errors.New("profile has no location")
	ErrInvalidID        = errors.New("invalid id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidInput is returned, wrapped, when a form fails validation.
	ErrInvalidInput = validators.ErrInvalidInput

	// ErrSessionExpired is returned, wrapped, when the backend session could
	// not be renewed. The caller must sign in again.
	ErrSessionExpired = adapter.ErrSessionExpired
)
