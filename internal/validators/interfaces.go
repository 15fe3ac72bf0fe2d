// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is sent to the backend.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - StructValidator: the implementation driven by the `validate` struct
//     tags on the request types in models.
//
// Failures wrap [ErrInvalidInput] and name the offending fields by their JSON
// names, e.g. "brand is required; frizz must be at most 5".
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific fields, named as in JSON.
	Validate(context.Context, any, ...string) error
}
