package models

// StatusResponse is the envelope common to every response body: the outcome
// code plus a human-readable message for client display.
type StatusResponse struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// StatusAndTokenResponse is returned by login and the admin token endpoint.
// Token is empty unless Status is StatusSuccess.
type StatusAndTokenResponse struct {
	StatusResponse
	Token string `json:"jwtToken,omitempty"`
}

// StatusAndUserResponse is returned by the single-user lookup. The embedded
// user is always sanitized before marshaling.
type StatusAndUserResponse struct {
	StatusResponse
	User *User `json:"user,omitempty"`
}

// StatusAndUsersResponse is returned by the administrator-only bulk listing.
type StatusAndUsersResponse struct {
	StatusResponse
	Users []User `json:"users,omitempty"`
}
