// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorturl-platform/userservice/internal/service"
	"github.com/shorturl-platform/userservice/internal/store"
	"github.com/shorturl-platform/userservice/models"
)

// ─────────────────────────────────────────────
// POST /shorturl/users/signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	var captured models.SignupRequest
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) error {
			captured = req
			return nil
		},
	}
	h, _ := newTestHandler(t, auth)

	req := jsonRequest(http.MethodPost, "/shorturl/users/signup",
		`{"username":"alice","password":"s3cret","name":"Alice","email":"alice@example.com"}`)
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeStatus(t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "alice", captured.Username)
	assert.Equal(t, "s3cret", captured.Password)
}

func TestSignup_MissingPassword(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(context.Context, models.SignupRequest) error {
			return service.ErrMissingPassword
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/signup", `{"username":"alice"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.StatusMissingPassword, decodeStatus(t, rec).Status)
}

func TestSignup_UserAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(context.Context, models.SignupRequest) error {
			return store.ErrUserAlreadyExists
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/signup",
		`{"username":"alice","password":"s3cret"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, models.StatusUserAlreadyExists, decodeStatus(t, rec).Status)
}

func TestSignup_InvalidJSON(t *testing.T) {
	auth := &mockAuthService{}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/signup", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /shorturl/users/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, string, error) {
			return models.User{Username: req.Username}, "signed-token", nil
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/login",
		`{"username":"alice","password":"s3cret"}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusAndTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, string, error) {
			return models.User{}, "", service.ErrWrongPassword
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/login",
		`{"username":"alice","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, models.StatusWrongPassword, decodeStatus(t, rec).Status)
}

func TestLogin_UnknownUserIsUnauthorized(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, string, error) {
			return models.User{}, "", store.ErrUserNotFound
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodPost, "/shorturl/users/login",
		`{"username":"ghost","password":"s3cret"}`))

	// 401, not 404: login must not reveal which accounts exist.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, models.StatusNoSuchUser, decodeStatus(t, rec).Status)
}

// ─────────────────────────────────────────────
// GET /shorturl/users/admin-jwt
// ─────────────────────────────────────────────

func TestAdminToken_Success(t *testing.T) {
	auth := &mockAuthService{
		adminTokenFn: func(context.Context) (string, error) {
			return "admin-token", nil
		},
	}
	h, _ := newTestHandler(t, auth)

	req := jsonRequest(http.MethodGet, "/shorturl/users/admin-jwt", "")
	req.SetBasicAuth(testAdminUsername, testAdminPassword)
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusAndTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin-token", resp.Token)
}

func TestAdminToken_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{}
	h, _ := newTestHandler(t, auth)

	req := jsonRequest(http.MethodGet, "/shorturl/users/admin-jwt", "")
	req.SetBasicAuth(testAdminUsername, "not-the-password")
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminToken_NoCredentials(t *testing.T) {
	auth := &mockAuthService{}
	h, _ := newTestHandler(t, auth)

	rec := serve(t, h, jsonRequest(http.MethodGet, "/shorturl/users/admin-jwt", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}
