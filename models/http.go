package models

// NoteRequest is the inbound payload for note create and update operations.
// The owner is taken from the authenticated request context, never from the
// body.
type NoteRequest struct {
	// Content is the note text submitted by the client.
	Content string `json:"content"`
}

// ErrorResponse is the uniform JSON error envelope returned by the API.
type ErrorResponse struct {
	// Error is the user-facing message. Authentication failures always
	// carry a single generic message regardless of the root cause.
	Error string `json:"error"`
}

// LoginResponse is returned on successful login. The same token is also set
// as the "jwt" cookie and echoed in the Authorization header.
type LoginResponse struct {
	// Username is the authenticated account name.
	Username string `json:"username"`

	// Token is the compact JWS session token.
	Token string `json:"token"`
}
