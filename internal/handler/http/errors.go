// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware and the request
// decoder. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries
	// neither an "auth-token" nor an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be parsed as "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrForbidden is returned by the employee gate for other roles.
	ErrForbidden = errors.New("access to the route is forbidden")

	// ErrInvalidBody is returned when the body is neither a JSON object nor
	// a form.
	ErrInvalidBody = errors.New("request body must be a JSON object or a form")

	// ErrInvalidID is returned for a non-numeric or non-positive {id} segment.
	ErrInvalidID = errors.New("invalid id in path")
)
