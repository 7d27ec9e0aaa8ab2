// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package service

import "errors"

// Sentinel errors returned by the authentication service. Each corresponds
// to one terminal outcome of the status taxonomy; the HTTP layer maps them
// to wire statuses and response codes. None of them is ever retried.
var (
	ErrMissingUsername    = errors.New("a username must be specified")
	ErrMissingPassword    = errors.New("a password must be specified")
	ErrMissingOldPassword = errors.New("the old password must be specified")
	ErrMissingNewPassword = errors.New("the new password must be specified")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserConfirmationMismatch is returned when a self-service operation
	// targets an account other than the authenticated caller's own.
	ErrUserConfirmationMismatch = errors.New("caller identity does not match target user")

	// ErrMustBeAdmin is returned when a non-administrator attempts an
	// administrator-only operation.
	ErrMustBeAdmin = errors.New("operation requires the ADMIN role")
)
