package http

import (
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/models"
)

func (h *Handler) createClassRole(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.services.ClassRoleService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassRoleCreated)
	resp.Data.ClassRoleID = id
	writeSuccess(w, r, resp, http.StatusCreated)
}
