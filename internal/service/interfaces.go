// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package service

import (
	"context"

	"github.com/shorturl-platform/userservice/models"
)

// AuthService orchestrates the credential store, the password hasher, and
// the token manager to implement every account operation the service
// exposes. Authorization decisions that depend on the caller's identity are
// made here, from the identity the transport layer established.
type AuthService interface {
	// Signup creates a USER account. No token is issued on signup; the new
	// user logs in to obtain one.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login verifies the credentials, stamps the account's lastLogin, and
	// returns the sanitized account together with a fresh bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, string, error)

	// AdminToken mints a bearer token for the administrator account named by
	// the secrets store. The transport layer has already authenticated the
	// caller against the admin credentials.
	AdminToken(ctx context.Context) (string, error)

	// GetUser returns one sanitized account record. Callers may read their
	// own record; administrators may read any.
	GetUser(ctx context.Context, caller models.Identity, username string) (models.User, error)

	// GetAllUsers returns every sanitized account record. ADMIN only.
	GetAllUsers(ctx context.Context, caller models.Identity) ([]models.User, error)

	// ChangePassword verifies the old password and stores a hash of the new
	// one. Callers may only change their own password. When the account is
	// the administrator, the new plaintext is propagated to the secrets
	// store so that a later bootstrap seeds a matching credential.
	ChangePassword(ctx context.Context, caller models.Identity, req models.ChangePasswordRequest) error

	// DeleteUser removes one account. Callers may delete their own account;
	// administrators may delete any.
	DeleteUser(ctx context.Context, caller models.Identity, username string) error

	// DeleteAllUsers removes every account except the administrator's.
	// ADMIN only.
	DeleteAllUsers(ctx context.Context, caller models.Identity) error

	// InitializeRepository destroys and recreates the backing table, then
	// seeds the single ADMIN account from the secrets store. The transport
	// layer restricts this to the trusted local bootstrap caller.
	InitializeRepository(ctx context.Context) error

	// SetSimulateExpiredToken flips the token manager's test-only toggle
	// that reports every token as expired. ADMIN only.
	SetSimulateExpiredToken(ctx context.Context, caller models.Identity, enabled bool) error
}
