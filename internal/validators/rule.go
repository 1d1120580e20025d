package validators

import (
	"context"
	"strings"
)

// fieldPlaceholder is substituted with the field name when a message is rendered.
const fieldPlaceholder = "{field}"

// Input is the decoded request body: JSON objects decoded with UseNumber,
// or form values as strings. Absent fields are simply missing keys.
type Input map[string]any

// Args is the evaluation context handed to every rule.
type Args struct {
	// Entity is the schema name, e.g. "classRole".
	Entity string
	// Field is the name of the field being validated.
	Field string
	// Input is the whole request, for cross-field rules. Read only.
	Input Input
	// Lookup is the existence backend used by asynchronous rules.
	Lookup ExistenceLookup
}

// EvaluateFunc reports whether value satisfies a rule. A false verdict is a
// validation failure; a non-nil error is reserved for infrastructure faults.
type EvaluateFunc func(ctx context.Context, value any, args Args) (bool, error)

// Rule is a single named constraint. Rules are values: they are defined once
// and shared by every validation, so Evaluate must not mutate its arguments.
type Rule struct {
	// Name identifies the rule kind, e.g. "isDefined" or "exists".
	Name string
	// Message is the failure message template.
	Message string
	// Async marks rules that consult the ExistenceLookup.
	Async bool
	// AlwaysRun makes the rule run even when an optional field is absent.
	AlwaysRun bool
	// Kind is the lookup kind of asynchronous rules.
	Kind     EntityKind
	Evaluate EvaluateFunc
}

// WithMessage returns a copy of r with a different message template.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// Render returns the failure message for the given field.
func (r Rule) Render(field string) string {
	return strings.ReplaceAll(r.Message, fieldPlaceholder, field)
}
