package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

type reportEntityRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReportEntityRepository(db *DB, log *logger.Logger) ReportEntityRepository {
	return &reportEntityRepository{db: db, logger: log}
}

// Add inserts the entity. A zero ReportID is stored as NULL.
func (r *reportEntityRepository) Add(ctx context.Context, entity models.ReportEntity) (int64, error) {
	query, args, err := r.db.buildInsertReportEntityQuery(entity)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reportEntityRepository.Add").
			Int64("class_id", entity.ClassID).
			Msg("error inserting report entity")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
