package validators

import (
	"fmt"
	"slices"
)

// ExtractFunc derives a field value from the raw input.
type ExtractFunc func(input Input) any

// FieldSpec binds an ordered list of rules to one input field.
//
// When Required is false and the extracted value is absent (see IsAbsent),
// the field is valid and only rules flagged AlwaysRun are evaluated.
type FieldSpec struct {
	Name     string
	Required bool
	Rules    []Rule
	Extract  ExtractFunc
}

func (f FieldSpec) value(input Input) any {
	if f.Extract != nil {
		return f.Extract(input)
	}
	return input[f.Name]
}

// FieldBuilder assembles a FieldSpec fluently:
//
//	Field("paymentPerHour").Required().Rules(IsDefined(msg), IsNumber(msg))
type FieldBuilder struct {
	spec FieldSpec
}

// Field starts a FieldSpec for the named input key.
func Field(name string) *FieldBuilder {
	return &FieldBuilder{spec: FieldSpec{Name: name}}
}

func (b *FieldBuilder) Required() *FieldBuilder {
	b.spec.Required = true
	return b
}

func (b *FieldBuilder) Rules(rules ...Rule) *FieldBuilder {
	b.spec.Rules = append(b.spec.Rules, rules...)
	return b
}

func (b *FieldBuilder) Extract(fn ExtractFunc) *FieldBuilder {
	b.spec.Extract = fn
	return b
}

// Spec returns a copy of the built FieldSpec.
func (b *FieldBuilder) Spec() FieldSpec {
	spec := b.spec
	spec.Rules = slices.Clone(b.spec.Rules)
	return spec
}

// Schema is the ordered list of field specs describing one request DTO.
// Field order is declaration order and determines report order.
type Schema struct {
	Entity string
	Fields []FieldSpec
}

// BuildSchema builds a Schema and rejects duplicate field names.
func BuildSchema(entity string, fields ...*FieldBuilder) (*Schema, error) {
	schema := &Schema{Entity: entity, Fields: make([]FieldSpec, 0, len(fields))}
	seen := make(map[string]struct{}, len(fields))

	for _, fb := range fields {
		spec := fb.Spec()
		if _, ok := seen[spec.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, entity, spec.Name)
		}
		seen[spec.Name] = struct{}{}
		schema.Fields = append(schema.Fields, spec)
	}

	return schema, nil
}

// MustSchema is like BuildSchema but panics on error. It is meant for
// package-level schema definitions.
func MustSchema(entity string, fields ...*FieldBuilder) *Schema {
	schema, err := BuildSchema(entity, fields...)
	if err != nil {
		panic(err)
	}
	return schema
}

// NewSchema is an alias of MustSchema.
func NewSchema(entity string, fields ...*FieldBuilder) *Schema {
	return MustSchema(entity, fields...)
}

// Kinds lists the lookup kinds referenced by asynchronous rules,
// deduplicated, in declaration order.
func (s *Schema) Kinds() []EntityKind {
	var kinds []EntityKind
	for _, f := range s.Fields {
		for _, r := range f.Rules {
			if r.Async && !slices.Contains(kinds, r.Kind) {
				kinds = append(kinds, r.Kind)
			}
		}
	}
	return kinds
}

// Field returns the FieldSpec of the named field.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Only returns a schema restricted to the named fields, keeping declaration
// order. With no names the receiver itself is returned.
func (s *Schema) Only(names ...string) (*Schema, error) {
	if len(names) == 0 {
		return s, nil
	}

	for _, name := range names {
		if _, ok := s.Field(name); !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Entity, name)
		}
	}

	scoped := &Schema{Entity: s.Entity}
	for _, f := range s.Fields {
		if slices.Contains(names, f.Name) {
			scoped.Fields = append(scoped.Fields, f)
		}
	}
	return scoped, nil
}
