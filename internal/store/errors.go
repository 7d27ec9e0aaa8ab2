// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package store

import "errors"

// Sentinel errors returned by UserStore implementations to signal well-known
// failure conditions. Callers should use errors.Is to match against these
// values; each one is a distinct, terminal outcome except ErrVersionConflict,
// which the read-modify-write combinator retries up to its bound.
var (
	// ErrUserAlreadyExists is returned by InsertIfAbsent when a record with
	// the same username is already present. This is the losing side of a
	// signup race and is never retried.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup or delete targets a username
	// that has no record in the table.
	ErrUserNotFound = errors.New("no such user")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version carried by the write does not match the version currently
	// stored, meaning another writer updated the record since it was read.
	ErrVersionConflict = errors.New("user record version conflict occurred")

	// ErrRetriesExhausted is returned by UpdateWithRetry when every attempt
	// of the bounded read-modify-write cycle lost the version race. It is an
	// internal error: a pathological write storm must not hang a request.
	ErrRetriesExhausted = errors.New("update retries exhausted")
)
