package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as lost connections,
	// serialization failures and deadlocks.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors reported by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its code.
// Non-PostgreSQL errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable: class 08 (connection exceptions), class 40 (transaction
// rollback, serialization failure, deadlock) and 57P03 (cannot connect now).
// Everything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable

	default:
		return NonRetryable
	}
}

// isUniqueViolation reports unique constraint violations of either driver.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err)
}
