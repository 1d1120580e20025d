package http

import (
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/models"
)

func (h *Handler) createReportEntity(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.services.ReportEntityService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgReportEntityCreated)
	resp.Data.ReportEntityID = id
	writeSuccess(w, r, resp, http.StatusCreated)
}
