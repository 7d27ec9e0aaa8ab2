// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package models

import "time"

// Role describes the authorization level of a user account.
// It is a closed two-variant enum: every account is either an ordinary
// user or the single seeded administrator.
type Role string

const (
	// RoleUser is the role assigned to every self-service signup.
	// Ordinary users may only operate on their own account.
	RoleUser Role = "USER"

	// RoleAdmin is the role of the seeded administrator account.
	// It is never assigned through any exposed operation.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// TimestampLayout is the display format used for the lastLogin and
// accountCreationDate attributes.
const TimestampLayout = "02 Jan 2006 15:04:05"

// NeverLoggedIn is the lastLogin value of an account whose owner has not
// logged in since the account was created.
const NeverLoggedIn = "hasn't logged in yet"

// User represents one account record in the user table, keyed by username.
//
// Password holds the bcrypt hash of the user's password. It is excluded from
// JSON serialization so that no response path can ever leak it; only the
// persistence layer reads and writes it.
//
// Version is the optimistic-locking counter owned exclusively by the store.
// A write must carry the version it last read; the store rejects the write if
// the stored version has changed since, and increments it on every successful
// write. Callers never set or inspect it.
type User struct {
	Username            string `json:"username" dynamodbav:"username"`
	Password            string `json:"-" dynamodbav:"password"`
	Role                Role   `json:"role" dynamodbav:"role"`
	Name                string `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Email               string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	LastLogin           string `json:"lastLogin,omitempty" dynamodbav:"lastLogin"`
	AccountCreationDate string `json:"accountCreationDate,omitempty" dynamodbav:"accountCreationDate"`
	Version             int64  `json:"-" dynamodbav:"version"`
}

// NewUser builds a fresh account record with the given credentials and role.
// The password must already be hashed by the caller. The creation timestamp is
// stamped from the supplied clock and lastLogin starts at NeverLoggedIn.
func NewUser(username, passwordHash string, role Role, name, email string, now time.Time) User {
	return User{
		Username:            username,
		Password:            passwordHash,
		Role:                role,
		Name:                name,
		Email:               email,
		LastLogin:           NeverLoggedIn,
		AccountCreationDate: now.Format(TimestampLayout),
	}
}

// Sanitized returns a copy of the user with all credential material cleared.
// Every record that leaves the service boundary goes through this, in
// addition to the `json:"-"` tags on the sensitive fields.
func (u User) Sanitized() User {
	u.Password = ""
	u.Version = 0
	return u
}

// Identity is the authenticated caller of a request, as established by the
// authorization middleware from a validated bearer token.
type Identity struct {
	Username string
	Role     Role
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
