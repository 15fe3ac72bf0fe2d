// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	upsertSessionSQL = `INSERT INTO session_values`
	selectSessionSQL = `SELECT name, value FROM session_values`
	deleteSessionSQL = `DELETE FROM session_values`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) CredentialRepository {
	t.Helper()
	return NewCredentialRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestCredentialRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][2]string
		queryErr error
		want     models.Credentials
		wantErr  error
	}{
		{
			name: "both values stored",
			rows: [][2]string{{AccessTokenKey, "A1"}, {RefreshTokenKey, "R1"}},
			want: models.Credentials{Access: "A1", Refresh: "R1"},
		},
		{
			name:    "only access stored",
			rows:    [][2]string{{AccessTokenKey, "A1"}},
			wantErr: ErrCredentialsNotFound,
		},
		{
			name:    "nothing stored",
			wantErr: ErrCredentialsNotFound,
		},
		{
			name:     "query fails",
			queryErr: errors.New("disk I/O error"),
			wantErr:  ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)

			expectation := mock.ExpectQuery(selectSessionSQL).WithArgs(AccessTokenKey, RefreshTokenKey)
			if tt.queryErr != nil {
				expectation.WillReturnError(tt.queryErr)
			} else {
				rows := sqlmock.NewRows([]string{"name", "value"})
				for _, r := range tt.rows {
					rows.AddRow(r[0], r[1])
				}
				expectation.WillReturnRows(rows)
			}

			got, err := repo.Load(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.Empty())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestCredentialRepository_Save_WritesBothInOneTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(upsertSessionSQL).
		WithArgs(AccessTokenKey, "A2", RefreshTokenKey, "R2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), models.Credentials{Access: "A2", Refresh: "R2"})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_IncompletePairTouchesNothing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	err := repo.Save(context.Background(), models.Credentials{Access: "A2"})

	require.ErrorIs(t, err, ErrIncompleteCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_RollsBackOnExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(upsertSessionSQL).WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), models.Credentials{Access: "A2", Refresh: "R2"})

	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.Save(context.Background(), models.Credentials{Access: "A2", Refresh: "R2"})

	require.ErrorIs(t, err, ErrBeginningTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(upsertSessionSQL).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.Save(context.Background(), models.Credentials{Access: "A2", Refresh: "R2"})

	require.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestCredentialRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(deleteSessionSQL).
		WithArgs(AccessTokenKey, RefreshTokenKey).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Delete_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(deleteSessionSQL).WillReturnError(errors.New("readonly database"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background())

	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}
