package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

// Storages aggregates the repositories and the existence lookup built on a
// single database connection.
type Storages struct {
	DB                     *DB
	UserRepository         UserRepository
	ClassRepository        ClassRepository
	ClassRoleRepository    ClassRoleRepository
	ReportEntityRepository ReportEntityRepository
	ExistenceLookup        validators.ExistenceLookup
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, cfg, log), nil
}

func newStorages(db *DB, cfg config.DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                     db,
		UserRepository:         NewUserRepository(db, log),
		ClassRepository:        NewClassRepository(db, log),
		ClassRoleRepository:    NewClassRoleRepository(db, log),
		ReportEntityRepository: NewReportEntityRepository(db, log),
		ExistenceLookup:        NewExistenceLookup(db, cfg.LookupTimeout, cfg.LookupRetries, log),
	}
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
