// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/curllabs/curllabs-client/internal/config"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_MemoryDSN(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: MemoryDSN},
	}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, storages.Credentials)
	assert.NoError(t, storages.Close())
}

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "state", "client.db")},
	}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = storages.Credentials.Load(ctx)
	require.ErrorIs(t, err, ErrCredentialsNotFound)

	require.NoError(t, storages.Credentials.Save(ctx, models.Credentials{Access: "A1", Refresh: "R1"}))
	// the second save upserts both rows
	require.NoError(t, storages.Credentials.Save(ctx, models.Credentials{Access: "A2", Refresh: "R2"}))
	require.NoError(t, storages.Close())

	// reopening applies no migration twice and keeps the pair
	storages, err = NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	got, err := storages.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Access)
	assert.Equal(t, "R2", got.Refresh)

	require.NoError(t, storages.Credentials.Delete(ctx))
	_, err = storages.Credentials.Load(ctx)
	require.ErrorIs(t, err, ErrCredentialsNotFound)
}
