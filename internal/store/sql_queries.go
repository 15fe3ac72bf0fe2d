// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/curllabs/curllabs-client/models"
)

// Fixed names under which the two credentials are stored.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"

	sessionValuesTable = "session_values"
)

var (
	sessionKeys = []string{AccessTokenKey, RefreshTokenKey}

	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// buildUpsertCredentialsQuery writes both names in a single statement,
// overwriting existing values.
func buildUpsertCredentialsQuery(credentials models.Credentials) (string, []any, error) {
	query, args, err := sqlite.
		Insert(sessionValuesTable).
		Columns("name", "value").
		Values(AccessTokenKey, credentials.Access).
		Values(RefreshTokenKey, credentials.Refresh).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCredentialsQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select("name", "value").
		From(sessionValuesTable).
		Where(sq.Eq{"name": sessionKeys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCredentialsQuery() (string, []any, error) {
	query, args, err := sqlite.
		Delete(sessionValuesTable).
		Where(sq.Eq{"name": sessionKeys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
