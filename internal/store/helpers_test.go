package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
)

// newMockDB returns a Postgres-flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
