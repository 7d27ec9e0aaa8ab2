package models

// SignupRequest is the payload of POST /shorturl/users/signup.
// Name and Email are optional display attributes.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// LoginRequest is the payload of POST /shorturl/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the payload of PATCH /shorturl/users/change-password.
// Username must match the authenticated caller; the old password is
// re-verified before the new one is stored.
type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
