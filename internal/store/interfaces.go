// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/curllabs/curllabs-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_repository_mock.go -package=mock

// CredentialRepository persists the session credential pair on the client
// device. Both tokens are always written and removed together.
type CredentialRepository interface {
	// Load returns the stored pair, or [ErrCredentialsNotFound] when either
	// value is missing.
	Load(ctx context.Context) (models.Credentials, error)

	// Save replaces both stored values in one transaction. An incomplete pair
	// is rejected with [ErrIncompleteCredentials] and nothing is written.
	Save(ctx context.Context, credentials models.Credentials) error

	// Delete removes both values in one transaction. Deleting an absent pair
	// is not an error.
	Delete(ctx context.Context) error
}
