// Package utils provides general-purpose helper utilities used across
// different parts of the application. Includes tools for working with
// context, type-safe keys, password hashing, bearer-token parsing, and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/shorturl-platform/userservice/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authorization middleware stores
// the authenticated caller's identity and role in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, models.Identity{...})
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated caller's identity from
// the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — the value is present and has the correct type
//   - ok == false — the request never passed the authorization middleware
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
