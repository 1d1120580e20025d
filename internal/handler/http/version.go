package http

import (
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/utils"
)

// getServerVersion writes the build info as a bare JSON object, outside
// the response envelope.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing build info")
	}
}
