package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
// Blank passwords must be rejected at the service boundary before hashing is
// ever attempted; this error is the hasher's own backstop.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword encodes a plaintext password with bcrypt using the default
// cost. bcrypt generates a fresh random salt on every call, so hashing the
// same plaintext twice yields two different hash strings.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// PasswordMatches reports whether the plaintext password corresponds to the
// stored bcrypt hash. bcrypt's comparison runs in time independent of where
// the mismatch occurs, so no timing side-channel is exposed.
func PasswordMatches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
