package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

type classRoleRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClassRoleRepository(db *DB, log *logger.Logger) ClassRoleRepository {
	return &classRoleRepository{db: db, logger: log}
}

func (r *classRoleRepository) Add(ctx context.Context, role models.ClassRole) (int64, error) {
	query, args, err := r.db.buildInsertClassRoleQuery(role)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "classRoleRepository.Add").Msg("error inserting class role")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
