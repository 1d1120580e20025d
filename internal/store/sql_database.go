package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/migrations"
)

// DB wraps *sql.DB with the driver-specific query builder and error
// classifier shared by all repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	builder            sq.StatementBuilderType
	driver             string
}

// newDB wraps an open connection. The placeholder format follows the driver.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		logger:  log,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnect opens a connection with the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (db *DB) isRetryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
