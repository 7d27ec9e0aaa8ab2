package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/store"
	"github.com/shorturl-platform/userservice/internal/utils"
	"github.com/shorturl-platform/userservice/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Signup(ctx, req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("signup failed")
		writeError(w, err)
		return
	}

	log.Info().Str("username", req.Username).Msg("user account created")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		"user account successfully created")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		// An unknown username reports the same way as a wrong password so
		// that login responses do not reveal which accounts exist.
		if errors.Is(err, store.ErrUserNotFound) {
			writeStatus(w, models.StatusNoSuchUser, http.StatusUnauthorized)
			return
		}
		writeError(w, err)
		return
	}

	log.Info().Str("username", req.Username).Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.StatusAndTokenResponse{
		StatusResponse: models.StatusResponse{
			Status:  models.StatusSuccess,
			Message: "login succeeded",
		},
		Token: token,
	}, http.StatusOK)
}

// adminToken mints a bearer token for the administrator. The request has
// already passed adminBasicAuth, so no further checks are needed here.
func (h *Handler) adminToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.AdminToken(ctx)
	if err != nil {
		log.Err(err).Msg("cannot mint admin token")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusAndTokenResponse{
		StatusResponse: models.StatusResponse{
			Status:  models.StatusSuccess,
			Message: "admin token successfully issued",
		},
		Token: token,
	}, http.StatusOK)
}
