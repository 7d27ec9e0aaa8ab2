// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with errors.Is.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAdminCredentials is returned by the administrative gate when
	// the supplied basic-auth credentials do not match the secrets-held
	// administrator username and password.
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
)
