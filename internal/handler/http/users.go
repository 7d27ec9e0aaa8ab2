package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shorturl-platform/userservice/internal/hostcheck"
	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/utils"
	"github.com/shorturl-platform/userservice/models"
)

func (h *Handler) getSpecificUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}

	username := chi.URLParam(r, "username")

	user, err := h.services.AuthService.GetUser(ctx, caller, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("cannot read user")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusAndUserResponse{
		StatusResponse: models.StatusResponse{
			Status:  models.StatusSuccess,
			Message: fmt.Sprintf("user %s successfully retrieved", username),
		},
		User: &user,
	}, http.StatusOK)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}

	users, err := h.services.AuthService.GetAllUsers(ctx, caller)
	if err != nil {
		log.Err(err).Msg("cannot read users")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusAndUsersResponse{
		StatusResponse: models.StatusResponse{
			Status:  models.StatusSuccess,
			Message: "all users successfully retrieved",
		},
		Users: users,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, caller, req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("cannot change password")
		writeError(w, err)
		return
	}

	log.Info().Str("username", req.Username).Msg("password changed")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		"password successfully changed")
}

func (h *Handler) deleteSpecificUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}

	username := chi.URLParam(r, "username")

	if err := h.services.AuthService.DeleteUser(ctx, caller, username); err != nil {
		log.Err(err).Str("username", username).Msg("cannot delete user")
		writeError(w, err)
		return
	}

	log.Info().Str("username", username).Msg("user deleted")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		fmt.Sprintf("user %s successfully deleted", username))
}

func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.DeleteAllUsers(ctx, caller); err != nil {
		log.Err(err).Msg("cannot delete users")
		writeError(w, err)
		return
	}

	log.Info().Msg("all non-admin users deleted")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		"all users successfully deleted")
}

// initializeRepository rebuilds the backing table and reseeds the admin
// account. Admin basic auth has already been checked; in addition the
// request must originate on the local machine, so the endpoint cannot be
// reached from the cloud even with valid credentials.
func (h *Handler) initializeRepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !hostcheck.IsLocalRequest(r.RemoteAddr) {
		log.Warn().Str("remote_addr", r.RemoteAddr).Msg("repository initialization refused for non-local caller")
		writeStatusMessage(w, models.StatusNotOnLocalMachine, http.StatusForbidden,
			"initialization of the user repository can be done only when the service is running on your local machine")
		return
	}

	if err := h.services.AuthService.InitializeRepository(ctx); err != nil {
		log.Err(err).Msg("repository initialization failed")
		writeError(w, err)
		return
	}

	log.Info().Msg("user repository initialized")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		"initialization of the user repository completed successfully")
}

func (h *Handler) simulateExpiredToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	enabled, err := strconv.ParseBool(chi.URLParam(r, "enabled"))
	if err != nil {
		log.Err(err).Msg("invalid simulate-expired flag")
		http.Error(w, "the {enabled} parameter must be a boolean", http.StatusBadRequest)
		return
	}

	// Basic-auth routes carry no identity in the context. The admin
	// middleware already verified the credentials, so act as the admin.
	adminUsername, err := h.secrets.AdminUsername(ctx)
	if err != nil {
		log.Err(err).Msg("cannot read admin username")
		writeStatus(w, models.StatusUnknownError, http.StatusInternalServerError)
		return
	}
	caller := models.Identity{Username: adminUsername, Role: models.RoleAdmin}

	if err := h.services.AuthService.SetSimulateExpiredToken(ctx, caller, enabled); err != nil {
		log.Err(err).Msg("cannot toggle expired-token simulation")
		writeError(w, err)
		return
	}

	log.Info().Bool("enabled", enabled).Msg("expired-token simulation toggled")
	writeStatusMessage(w, models.StatusSuccess, http.StatusOK,
		fmt.Sprintf("expired-token simulation set to %t", enabled))
}
