package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

type classRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewClassRepository constructs a [ClassRepository] backed by db.
func NewClassRepository(db *DB, log *logger.Logger) ClassRepository {
	log.Debug().Msg("creating class repository")
	return &classRepository{db: db, logger: log}
}

func (r *classRepository) Add(ctx context.Context, class models.Class) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertClassQuery(class)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "classRepository.Add").Msg("error inserting class")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// FindByID returns the class including archived ones; callers check IsArchived.
func (r *classRepository) FindByID(ctx context.Context, id int64) (models.Class, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindClassByIDQuery(id)
	if err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	class, err := scanClass(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Class{}, ErrClassNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "classRepository.FindByID").Int64("class_id", id).Msg("error finding class")
		return models.Class{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return class, nil
}

func (r *classRepository) Update(ctx context.Context, class models.Class) error {
	query, args, err := r.db.buildUpdateClassQuery(class)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "classRepository.Update", query, args)
}

func (r *classRepository) Archive(ctx context.Context, id int64) error {
	query, args, err := r.db.buildArchiveClassQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "classRepository.Archive", query, args)
}

func (r *classRepository) FindCount(ctx context.Context) (int, error) {
	query, args, err := r.db.buildCountClassesQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "classRepository.FindCount").Msg("error counting classes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]models.Class, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindAllClassesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "classRepository.FindAll").Msg("error querying classes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	classes := make([]models.Class, 0)
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			log.Err(err).Str("func", "classRepository.FindAll").Msg("error scanning class")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		classes = append(classes, class)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return classes, nil
}

func (r *classRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClassNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClass(row rowScanner) (models.Class, error) {
	var class models.Class
	var description sql.NullString

	err := row.Scan(&class.ID, &class.Name, &class.AgeGroup, &description, &class.IsArchived)
	class.Description = description.String

	return class, err
}
