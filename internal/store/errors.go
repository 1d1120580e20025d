package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when the username or e-mail of a new
	// user violates a unique constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrClassNotFound is returned when the class does not exist or is
	// archived (for updates).
	ErrClassNotFound = errors.New("class was not found")

	// ErrUnsupportedDriver is returned for drivers other than pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrUnsupportedKind is returned by the existence lookup for entity
	// kinds it has no table mapping for.
	ErrUnsupportedKind = errors.New("unsupported entity kind")
)

// Low-level database operation errors. Repository methods wrap driver errors
// with these so callers can tell query building from execution failures.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
