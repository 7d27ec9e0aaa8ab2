// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package http

import (
	"errors"
	"net/http"

	"github.com/shorturl-platform/userservice/internal/service"
	"github.com/shorturl-platform/userservice/internal/store"
	"github.com/shorturl-platform/userservice/internal/utils"
	"github.com/shorturl-platform/userservice/models"
)

// statusMessages holds the human-readable text accompanying each wire
// status. Success messages are phrased per operation by the handlers.
var statusMessages = map[models.Status]string{
	models.StatusMissingUsername:          "a username must be specified",
	models.StatusMissingPassword:          "a password must be specified",
	models.StatusMissingOldPassword:       "the old password must be specified",
	models.StatusMissingNewPassword:       "the new password must be specified",
	models.StatusUserAlreadyExists:        "user already exists",
	models.StatusNoSuchUser:               "no such user",
	models.StatusWrongPassword:            "the supplied password is not correct",
	models.StatusUserConfirmationMismatch: "the target user does not match the authenticated caller",
	models.StatusMustBeAdmin:              "this operation requires the ADMIN role",
	models.StatusNotOnLocalMachine:        "repository initialization can be done only from the local machine",
	models.StatusUnknownError:             "an unexpected error occurred",
}

// statusFromError maps a service- or store-layer error to the wire status
// and HTTP response code. The ordering matches the error taxonomy:
// validation, conflict, not-found, unauthorized, then internal.
func statusFromError(err error) (models.Status, int) {
	switch {
	case errors.Is(err, service.ErrMissingUsername):
		return models.StatusMissingUsername, http.StatusBadRequest
	case errors.Is(err, service.ErrMissingPassword):
		return models.StatusMissingPassword, http.StatusBadRequest
	case errors.Is(err, service.ErrMissingOldPassword):
		return models.StatusMissingOldPassword, http.StatusBadRequest
	case errors.Is(err, service.ErrMissingNewPassword):
		return models.StatusMissingNewPassword, http.StatusBadRequest
	case errors.Is(err, store.ErrUserAlreadyExists):
		return models.StatusUserAlreadyExists, http.StatusConflict
	case errors.Is(err, store.ErrUserNotFound):
		return models.StatusNoSuchUser, http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword):
		return models.StatusWrongPassword, http.StatusUnauthorized
	case errors.Is(err, service.ErrUserConfirmationMismatch):
		return models.StatusUserConfirmationMismatch, http.StatusUnauthorized
	case errors.Is(err, service.ErrMustBeAdmin):
		return models.StatusMustBeAdmin, http.StatusUnauthorized
	default:
		return models.StatusUnknownError, http.StatusInternalServerError
	}
}

// writeStatus writes the plain status envelope with its canonical message.
func writeStatus(w http.ResponseWriter, status models.Status, code int) {
	writeStatusMessage(w, status, code, statusMessages[status])
}

// writeStatusMessage writes the status envelope with an operation-specific
// message.
func writeStatusMessage(w http.ResponseWriter, status models.Status, code int, message string) {
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: status, Message: message}, code)
}

// writeError maps err through statusFromError and writes the envelope.
func writeError(w http.ResponseWriter, err error) {
	status, code := statusFromError(err)
	writeStatus(w, status, code)
}
