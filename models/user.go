package models

import "time"

// User represents an account used for authentication and note ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier. Uniqueness is enforced
	// case-insensitively at the database level.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a one-way digest, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never written to responses.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
