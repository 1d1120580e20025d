package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrDuplicateField   = errors.New("duplicate field in schema")
	ErrNilSchema        = errors.New("schema is nil")
	ErrUnknownKind      = errors.New("entity kind is not supported by the lookup")
	ErrNoLookup         = errors.New("no existence lookup configured")
	ErrLookupFailed     = errors.New("existence lookup failed")
	ErrValidationFailed = errors.New("validation failed")
)

// InfrastructureError reports that a validation could not be completed
// because the lookup backend failed or the context was cancelled.
// No report is produced in that case.
type InfrastructureError struct {
	Entity string
	Field  string
	Rule   string
	Kind   EntityKind
	Err    error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %s.%s (%s, kind %q): %v", ErrLookupFailed, e.Entity, e.Field, e.Rule, e.Kind, e.Err)
}

// Unwrap exposes both ErrLookupFailed and the underlying cause to errors.Is/As.
func (e *InfrastructureError) Unwrap() []error {
	return []error{ErrLookupFailed, e.Err}
}

// ValidationError carries an invalid Report out of the service layer.
// errors.Is(err, ErrValidationFailed) holds for every ValidationError.
type ValidationError struct {
	Entity string
	Report Report
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %d error(s)", ErrValidationFailed, e.Entity, len(e.Report.Errors))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Messages returns the rendered messages of the wrapped report.
func (e *ValidationError) Messages() []string {
	return e.Report.Messages()
}
