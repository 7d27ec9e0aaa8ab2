// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package store

import (
	"context"

	"github.com/shorturl-platform/userservice/models"
)

// UserStore is the credential store: CRUD plus atomic conditional-write
// access to user records in the backing key-value engine, keyed by username.
//
// The record's Version field is owned exclusively by the store. Reads return
// it so that a later CompareAndSwapUpdate can carry it back; callers never
// set or interpret it.
type UserStore interface {
	// InsertIfAbsent writes the record only if no record with that username
	// exists yet. On conflict it returns ErrUserAlreadyExists. The conflict
	// is terminal and never retried: it is the correct outcome for the
	// losing writer of a signup race.
	InsertIfAbsent(ctx context.Context, user models.User) error

	// Get returns the record for username, or ErrUserNotFound.
	Get(ctx context.Context, username string) (models.User, error)

	// ScanAll returns every record in the table in unspecified order. Used
	// only by administrator-gated listing and bulk deletion.
	ScanAll(ctx context.Context) ([]models.User, error)

	// CompareAndSwapUpdate writes the record only if the stored version still
	// equals user.Version. On mismatch it returns ErrVersionConflict; on
	// success it returns the record carrying its new version.
	CompareAndSwapUpdate(ctx context.Context, user models.User) (models.User, error)

	// Delete removes the record. Deleting a record that is already gone
	// returns ErrUserNotFound.
	Delete(ctx context.Context, user models.User) error
}

// Initializer is implemented by stores that can destroy and recreate their
// backing table. It is exercised only by the trusted-host bootstrap
// operation, which runs synchronously and must complete before any other
// operation against the store is considered valid.
type Initializer interface {
	// Initialize wipes the backing table if it exists and recreates it empty,
	// blocking until the engine reports the new table ready.
	Initialize(ctx context.Context) error
}
