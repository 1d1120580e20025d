// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

// retryBackoff is the pause before the n-th retry, multiplied by n.
const retryBackoff = 50 * time.Millisecond

// existenceLookup answers the validation engine's existence questions with
// a single indexed SELECT per call. It is read only.
type existenceLookup struct {
	db      *DB
	timeout time.Duration
	retries int
	logger  *logger.Logger
}

// NewExistenceLookup builds the SQL-backed [validators.ExistenceLookup].
// Each query is bounded by timeout (when positive), and failures classified
// as [Retryable] are retried up to retries times.
func NewExistenceLookup(db *DB, timeout time.Duration, retries int, log *logger.Logger) validators.ExistenceLookup {
	return &existenceLookup{
		db:      db,
		timeout: timeout,
		retries: retries,
		logger:  log,
	}
}

func (l *existenceLookup) Supports(kind validators.EntityKind) bool {
	_, ok := existenceTargets[kind]
	return ok
}

// Exists reports whether a row of the given kind matches key. Archived
// classes do not match. Keys that cannot be converted to the column type
// never match.
func (l *existenceLookup) Exists(ctx context.Context, kind validators.EntityKind, key any) (bool, error) {
	target, ok := existenceTargets[kind]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	normalized, ok := target.normalizeKey(key)
	if !ok {
		return false, nil
	}

	query, args, err := l.db.buildExistsQuery(target, normalized)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found bool
	for attempt := 0; ; attempt++ {
		found, err = l.queryOnce(ctx, query, args)
		if err == nil || attempt >= l.retries || !l.db.isRetryable(err) {
			break
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "existenceLookup.Exists").
			Str("kind", kind.String()).
			Int("attempt", attempt+1).
			Msg("retrying existence lookup")

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt+1)):
		}
	}

	if err != nil {
		l.logger.Err(err).
			Str("func", "existenceLookup.Exists").
			Str("kind", kind.String()).
			Msg("existence lookup failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (l *existenceLookup) queryOnce(ctx context.Context, query string, args []any) (bool, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var one int
	err := l.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}
