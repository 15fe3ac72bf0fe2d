// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/curllabs/curllabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertCredentialsQuery(t *testing.T) {
	query, args, err := buildUpsertCredentialsQuery(models.Credentials{Access: "A1", Refresh: "R1"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into session_values")
	assert.Contains(t, q, "on conflict(name) do update set value = excluded.value")
	// SQLite placeholders, never Postgres-style.
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")

	assert.Equal(t, []any{AccessTokenKey, "A1", RefreshTokenKey, "R1"}, args)
}

func Test_buildSelectCredentialsQuery(t *testing.T) {
	query, args, err := buildSelectCredentialsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select name, value from session_values")
	assert.Contains(t, q, "name in (?,?)")
	assert.Equal(t, []any{AccessTokenKey, RefreshTokenKey}, args)
}

func Test_buildDeleteCredentialsQuery(t *testing.T) {
	query, args, err := buildDeleteCredentialsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from session_values")
	assert.Contains(t, q, "name in (?,?)")
	assert.Equal(t, []any{AccessTokenKey, RefreshTokenKey}, args)
}
