// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: the first statement goose issues fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_CreateSessionValues(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, "00001_create_session_values.sql")
	if err != nil {
		t.Fatalf("expected embedded migration, got: %v", err)
	}

	sqlText := string(data)
	for _, want := range []string{"-- +goose Up", "session_values", "name  TEXT PRIMARY KEY", "-- +goose Down"} {
		if !strings.Contains(sqlText, want) {
			t.Errorf("expected migration to contain %q", want)
		}
	}
}
