// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the class-reports HTTP API,
// used by the admin CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). Validation failures carry the server's
// rule messages in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-class-reports/models"
)

// Fields is a request body sent as a JSON object. Values are passed through
// unchanged so that the server validates exactly what the caller typed.
type Fields map[string]any

// ServerAdapter talks to the class-reports server.
type ServerAdapter interface {
	// SetToken stores the token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored token or an empty string.
	Token() string

	// Register creates a user and returns its ID.
	Register(ctx context.Context, fields Fields) (int64, error)

	// Login authenticates the user, stores the issued token via SetToken
	// and returns the user ID.
	Login(ctx context.Context, username, password string) (int64, error)

	CreateClass(ctx context.Context, fields Fields) (int64, error)
	ListClasses(ctx context.Context) ([]models.Class, int, error)
	GetClass(ctx context.Context, id int64) (models.Class, error)
	ArchiveClass(ctx context.Context, id int64) error

	CreateClassRole(ctx context.Context, fields Fields) (int64, error)
	CreateReportEntity(ctx context.Context, fields Fields) (int64, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
