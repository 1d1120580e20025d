package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNoToken is returned by Login when the server accepted the
	// credentials but sent no "auth-token" header.
	ErrNoToken = errors.New("server returned no auth token")
)
