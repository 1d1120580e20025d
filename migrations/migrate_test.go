// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"roles", "users", "classes", "class_roles", "reports", "report_entities"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
	}

	var roles int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM roles").Scan(&roles))
	assert.Equal(t, 2, roles)

	// a second run is a no-op
	require.NoError(t, Migrate(db, "sqlite3"))
}
