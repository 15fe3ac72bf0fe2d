// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/curllabs/curllabs-client/models"
)

type memoryCredentialRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCredentialRepository returns a [CredentialRepository] that keeps
// the pair in process memory. Used for the ":memory:" DSN and in tests.
func NewMemoryCredentialRepository() CredentialRepository {
	return &memoryCredentialRepository{values: make(map[string]string, len(sessionKeys))}
}

func (m *memoryCredentialRepository) Load(_ context.Context) (models.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	credentials := models.Credentials{
		Access:  m.values[AccessTokenKey],
		Refresh: m.values[RefreshTokenKey],
	}
	if !credentials.Complete() {
		return models.Credentials{}, ErrCredentialsNotFound
	}

	return credentials, nil
}

func (m *memoryCredentialRepository) Save(_ context.Context, credentials models.Credentials) error {
	if !credentials.Complete() {
		return ErrIncompleteCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[AccessTokenKey] = credentials.Access
	m.values[RefreshTokenKey] = credentials.Refresh

	return nil
}

func (m *memoryCredentialRepository) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range sessionKeys {
		delete(m.values, key)
	}

	return nil
}
