// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the declarative request-validation engine
// of the class-reports backend.
//
// Core concepts:
//   - Rule: a named, immutable constraint with a message template. Rules are
//     either synchronous (format and range checks) or asynchronous (existence
//     and uniqueness checks that consult an ExistenceLookup).
//   - Schema: an ordered list of FieldSpec values describing one request DTO.
//   - Engine: evaluates a Schema against an Input and produces a Report that
//     lists every failing rule in field-then-rule order.
//   - Validator: the service-facing interface; SchemaValidator adapts an
//     Engine and a Schema to it and turns invalid reports into errors.
//
// Validation failures are data (a Report); only infrastructure faults of the
// lookup backend surface as errors (InfrastructureError).
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// EntityKind selects which persisted entity an asynchronous rule checks.
type EntityKind string

const (
	// KindClass matches classes that exist and are not archived.
	KindClass EntityKind = "class"
	// KindClassRole matches class roles by id.
	KindClassRole EntityKind = "classRole"
	// KindReport matches reports by id.
	KindReport EntityKind = "report"
	// KindUserEmail matches users by e-mail address.
	KindUserEmail EntityKind = "userEmail"
	// KindUserUsername matches users by username.
	KindUserUsername EntityKind = "userUsername"
)

func (k EntityKind) String() string {
	return string(k)
}

// ExistenceLookup answers existence questions against the persistence layer.
//
// Exists returns false for "not found" (including filtered-out rows such as
// archived classes) and a non-nil error only for infrastructure failures.
// Implementations must be safe for concurrent use.
type ExistenceLookup interface {
	Exists(ctx context.Context, kind EntityKind, key any) (bool, error)
	Supports(kind EntityKind) bool
}
