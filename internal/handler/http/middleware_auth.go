package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is read from the "auth-token" header or, failing that, from
// "Authorization: Bearer <token>". It is validated via
// [service.AuthService.ParseToken]; on success the user's ID and role are
// stored in the request context (see [utils.WithIdentity]).
//
// Requests without a valid token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", token.UserID).Msg("request authenticated")

		ctx = utils.WithIdentity(ctx, token.UserID, token.RoleID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireEmployee lets through only users whose role is the configured
// employee role. It must run after auth.
func (h *Handler) requireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roleID, ok := utils.GetRoleIDFromContext(r.Context())
		if !ok || roleID != h.employeeRoleID {
			writeError(w, r, ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getTokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(authTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
