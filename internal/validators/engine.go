package validators

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-class-reports/internal/logger"
)

// Engine evaluates schemas against request input.
//
// An Engine holds no per-call state and is safe for concurrent use.
// Within a field rules run strictly in declaration order; with
// WithConcurrency(n > 1) up to n fields are evaluated in parallel, and the
// report is reassembled in declaration order.
type Engine struct {
	lookup      ExistenceLookup
	concurrency int
	logger      *logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLookup sets the backend consulted by asynchronous rules.
func WithLookup(l ExistenceLookup) Option {
	return func(e *Engine) {
		e.lookup = l
	}
}

// WithConcurrency sets how many fields may be evaluated in parallel.
// Values below 2 mean strictly sequential evaluation.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// WithLogger sets the logger used for aborted and finished validations.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine builds an Engine. Without options it is sequential, has no
// lookup and discards logs.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{concurrency: 1, logger: logger.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register checks at startup that every lookup kind used by the schemas is
// supported by the configured lookup. Failures are programmer errors.
func (e *Engine) Register(schemas ...*Schema) error {
	for _, schema := range schemas {
		if schema == nil {
			return ErrNilSchema
		}
		for _, kind := range schema.Kinds() {
			if e.lookup == nil {
				return fmt.Errorf("%w: schema %s needs kind %q", ErrNoLookup, schema.Entity, kind)
			}
			if !e.lookup.Supports(kind) {
				return fmt.Errorf("%w: schema %s, kind %q", ErrUnknownKind, schema.Entity, kind)
			}
		}
	}
	return nil
}

// Validate evaluates every field of schema against input and returns the
// report. A failing lookup or a cancelled context aborts the validation with
// an *InfrastructureError and no report.
func (e *Engine) Validate(ctx context.Context, schema *Schema, input Input) (Report, error) {
	if schema == nil {
		return Report{}, ErrNilSchema
	}
	if input == nil {
		input = Input{}
	}

	perField := make([][]FieldError, len(schema.Fields))

	if e.concurrency < 2 || len(schema.Fields) < 2 {
		for i := range schema.Fields {
			fieldErrs, err := e.validateField(ctx, schema, i, input)
			if err != nil {
				return Report{}, e.fail(schema, err)
			}
			perField[i] = fieldErrs
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(e.concurrency)

		for i := range schema.Fields {
			g.Go(func() error {
				fieldErrs, err := e.validateField(gCtx, schema, i, input)
				if err != nil {
					return err
				}
				perField[i] = fieldErrs
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return Report{}, e.fail(schema, err)
		}
	}

	report := newReport(perField)
	e.logger.Debug().
		Str("entity", schema.Entity).
		Int("fields", len(schema.Fields)).
		Int("errors", len(report.Errors)).
		Msg("validation finished")

	return report, nil
}

// validateField runs the rules of schema.Fields[idx] in declaration order
// without short-circuiting.
func (e *Engine) validateField(ctx context.Context, schema *Schema, idx int, input Input) ([]FieldError, error) {
	field := schema.Fields[idx]
	value := field.value(input)
	skip := !field.Required && IsAbsent(value)

	args := Args{
		Entity: schema.Entity,
		Field:  field.Name,
		Input:  input,
		Lookup: e.lookup,
	}

	var errs []FieldError
	for _, rule := range field.Rules {
		if skip && !rule.AlwaysRun {
			continue
		}

		if rule.Async {
			if err := ctx.Err(); err != nil {
				return nil, e.infraError(schema, field, rule, err)
			}
		}

		ok, err := rule.Evaluate(ctx, value, args)
		if err != nil {
			return nil, e.infraError(schema, field, rule, err)
		}
		if !ok {
			errs = append(errs, FieldError{
				Field:   field.Name,
				Rule:    rule.Name,
				Message: rule.Render(field.Name),
			})
		}
	}

	return errs, nil
}

func (e *Engine) infraError(schema *Schema, field FieldSpec, rule Rule, err error) *InfrastructureError {
	return &InfrastructureError{
		Entity: schema.Entity,
		Field:  field.Name,
		Rule:   rule.Name,
		Kind:   rule.Kind,
		Err:    err,
	}
}

func (e *Engine) fail(schema *Schema, err error) error {
	e.logger.Err(err).
		Str("func", "Engine.Validate").
		Str("entity", schema.Entity).
		Msg("validation aborted")
	return err
}
