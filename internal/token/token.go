// Package token implements issuance and validation of the signed bearer
// tokens that other platform services present to authenticate requests.
//
// Tokens are compact HS256 JWTs carrying the username as the subject claim
// and the account role as a custom "role" claim. The signing secret and the
// token lifetime come from the platform's secrets store at wiring time.
package token

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shorturl-platform/userservice/models"
)

// Validation errors returned by Manager.Validate. Callers match them with
// errors.Is; the distinction matters only for client-facing messaging, not
// for server-side logic.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrBadSignature is returned when the token's signature does not verify
	// against the configured secret.
	ErrBadSignature = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned for any token that cannot be parsed as a
	// compact JWT, including tokens signed with an unexpected algorithm or
	// carrying an unusable claim set.
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims is the claim set embedded in every issued token: the standard
// registered claims (sub, iat, exp) plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// Manager issues and validates bearer tokens. All configuration is read-only
// after construction except the expiry-simulation toggle, which is guarded by
// a mutex and owned by this instance rather than being process-wide state.
type Manager struct {
	secret   []byte
	lifetime time.Duration

	mu              sync.RWMutex
	simulateExpired bool
}

// NewManager constructs a Manager signing with the given secret and stamping
// every token with an expiry of now + lifetime.
func NewManager(secret string, lifetime time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue signs a compact token for the given username and role.
func (m *Manager) Issue(username string, role models.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// Validate parses tokenString, verifies its signature and expiry, and
// returns the embedded identity.
//
// When the expiry-simulation toggle is on, every token reports ErrTokenExpired
// regardless of its actual exp claim, so integration tests can exercise the
// expiry path without waiting out a real lifetime.
func (m *Manager) Validate(tokenString string) (models.Identity, error) {
	if m.SimulateExpired() {
		return models.Identity{}, ErrTokenExpired
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Identity{}, ErrBadSignature
		default:
			return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return models.Identity{}, ErrTokenMalformed
	}

	return models.Identity{Username: claims.Subject, Role: claims.Role}, nil
}

// SetSimulateExpired flips the test-only toggle that forces Validate to
// report every token as expired.
func (m *Manager) SetSimulateExpired(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulateExpired = enabled
}

// SimulateExpired reports the current state of the expiry-simulation toggle.
func (m *Manager) SimulateExpired() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.simulateExpired
}
