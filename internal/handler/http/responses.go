package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func writeSuccess(w http.ResponseWriter, r *http.Request, resp models.Response, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError renders err as an error envelope. Validation failures carry
// the rule messages in "errors".
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	var errs []string
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		errs = vErr.Messages()
		log.Info().Str("entity", vErr.Entity).Strs("errors", errs).Msg("request rejected by validation")
	} else if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.NewErrorResponse(message, errs), status); wErr != nil {
		log.Err(wErr).Msg("error writing response")
	}
}
