package validators

import (
	"context"
)

// SchemaValidator adapts an Engine and a Schema to the Validator interface
// used by the service layer.
type SchemaValidator struct {
	engine *Engine
	schema *Schema
}

// NewSchemaValidator returns a Validator that checks Input values against schema.
func NewSchemaValidator(engine *Engine, schema *Schema) Validator {
	return &SchemaValidator{engine: engine, schema: schema}
}

// Validate accepts Input or map[string]any. Optional field names restrict
// validation to those fields. An invalid report is returned as a
// *ValidationError, lookup failures as an *InfrastructureError.
func (v *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var input Input
	switch value := obj.(type) {
	case Input:
		input = value
	case map[string]any:
		input = value
	default:
		return ErrUnsupportedType
	}

	schema, err := v.schema.Only(fields...)
	if err != nil {
		return err
	}

	report, err := v.engine.Validate(ctx, schema, input)
	if err != nil {
		return err
	}
	if !report.Valid {
		return &ValidationError{Entity: schema.Entity, Report: report}
	}

	return nil
}
