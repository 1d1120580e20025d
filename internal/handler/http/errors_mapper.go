package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/internal/service"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	validators.ErrValidationFailed: {http.StatusBadRequest, app.MsgValidationFailed},
	validators.ErrLookupFailed:     {http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:      {http.StatusBadRequest, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrUnauthenticated:         {http.StatusUnauthorized, app.MsgUnauthorized},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrForbidden:                  {http.StatusForbidden, app.MsgAccessDenied},
	ErrInvalidBody:                {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrInvalidID:                  {http.StatusBadRequest, app.MsgInvalidClassID},

	store.ErrUserAlreadyExists: {http.StatusConflict, app.MsgUserAlreadyExists},
	store.ErrClassNotFound:     {http.StatusNotFound, app.MsgClassNotFound},
}

// statusFromError maps err to the HTTP status and envelope message.
// Unknown errors are 500.
func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
