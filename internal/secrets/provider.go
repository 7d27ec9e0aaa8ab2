// Package secrets abstracts the platform's secrets store: the administrator
// credentials, the JWT signing secret and lifetime, and the name of the user
// table. The production implementation reads the AWS SSM Parameter Store;
// a static implementation serves tests and local runs.
package secrets

import (
	"context"
	"errors"
	"time"
)

// ErrParameterNotFound is returned when a requested secret has no value in
// the backing store.
var ErrParameterNotFound = errors.New("secret parameter not found")

// Provider exposes the configuration secrets the user service depends on.
//
// SetAdminPassword exists so that a password change on the administrator
// account propagates back to the store, keeping the bootstrap routine seeding
// a credential that still matches what the administrator actually uses.
type Provider interface {
	AdminUsername(ctx context.Context) (string, error)
	AdminPassword(ctx context.Context) (string, error)
	JWTSecret(ctx context.Context) (string, error)
	JWTLifetime(ctx context.Context) (time.Duration, error)
	TableName(ctx context.Context) (string, error)
	SetAdminPassword(ctx context.Context, password string) error
}
