// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/curllabs/curllabs-client/internal/adapter"
)

// Backend detail texts the client reacts to.
const (
	msgIncorrectCredentials = "Incorrect email or password"
	msgEmailRegistered      = "Email already registered"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The backend detail stays readable through [adapter.Detail].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.Detail(err)

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return err

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == msgIncorrectCredentials {
			return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == msgEmailRegistered {
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
