package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/models"
)

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.services.ClassService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassCreated)
	resp.Data.ClassID = id
	writeSuccess(w, r, resp, http.StatusCreated)
}

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	classes, count, err := h.services.ClassService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassesFound)
	resp.Data.Classes = classes
	resp.Data.Count = count
	writeSuccess(w, r, resp, http.StatusOK)
}

func (h *Handler) getClass(w http.ResponseWriter, r *http.Request) {
	id, err := classIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.services.ClassService.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassFound)
	resp.Data.ClassID = class.ID
	resp.Data.Class = &class
	writeSuccess(w, r, resp, http.StatusOK)
}

func (h *Handler) updateClass(w http.ResponseWriter, r *http.Request) {
	id, err := classIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClassService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassUpdated)
	resp.Data.ClassID = id
	writeSuccess(w, r, resp, http.StatusOK)
}

func (h *Handler) archiveClass(w http.ResponseWriter, r *http.Request) {
	id, err := classIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClassService.Archive(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewSuccessResponse(app.MsgClassArchived)
	resp.Data.ClassID = id
	writeSuccess(w, r, resp, http.StatusOK)
}

func classIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
