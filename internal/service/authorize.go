package service

import "github.com/shorturl-platform/userservice/models"

// The role-based access rules are pure functions of the caller's identity
// and the target username. The authorization middleware establishes the
// identity from a validated token; these checks decide what it may do.

// requireAdmin permits only callers holding the ADMIN role.
func requireAdmin(caller models.Identity) error {
	if !caller.IsAdmin() {
		return ErrMustBeAdmin
	}
	return nil
}

// requireSelf permits only the account owner, regardless of role.
func requireSelf(caller models.Identity, target string) error {
	if caller.Username != target {
		return ErrUserConfirmationMismatch
	}
	return nil
}

// requireSelfOrAdmin permits the account owner and any administrator.
func requireSelfOrAdmin(caller models.Identity, target string) error {
	if caller.IsAdmin() {
		return nil
	}
	return requireSelf(caller, target)
}
