package http

import (
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

// authTokenHeader carries the issued token on login and is accepted by the
// auth middleware alongside "Authorization: Bearer".
const authTokenHeader = "auth-token"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	resp := models.NewSuccessResponse(app.MsgUserRegistered)
	resp.Data.UserID = registeredUser.UserID
	writeSuccess(w, r, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set(authTokenHeader, token.SignedString)
	resp := models.NewSuccessResponse(app.MsgUserLoggedIn)
	resp.Data.UserID = foundUser.UserID
	writeSuccess(w, r, resp, http.StatusOK)
}
