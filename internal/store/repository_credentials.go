// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository returns the SQLite-backed [CredentialRepository].
// The session_values table must already exist (see [DB.Migrate]).
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Load(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery()
	if err != nil {
		return models.Credentials{}, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Load").
			Msg("failed to query session values")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials models.Credentials
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).
				Str("func", "credentialRepository.Load").
				Msg("failed to scan session value")
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch name {
		case AccessTokenKey:
			credentials.Access = value
		case RefreshTokenKey:
			credentials.Refresh = value
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Load").
			Msg("failed iterating session values")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !credentials.Complete() {
		return models.Credentials{}, ErrCredentialsNotFound
	}

	return credentials, nil
}

func (r *credentialRepository) Save(ctx context.Context, credentials models.Credentials) error {
	if !credentials.Complete() {
		return ErrIncompleteCredentials
	}

	query, args, err := buildUpsertCredentialsQuery(credentials)
	if err != nil {
		return err
	}

	return r.inTx(ctx, "credentialRepository.Save", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (r *credentialRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteCredentialsQuery()
	if err != nil {
		return err
	}

	return r.inTx(ctx, "credentialRepository.Delete", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

// inTx runs exec inside a transaction, rolling back on failure.
func (r *credentialRepository) inTx(ctx context.Context, funcName string, exec func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = exec(tx); err != nil {
		_ = tx.Rollback()
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
