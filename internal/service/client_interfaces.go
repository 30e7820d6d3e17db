package service

import (
	"context"

	"github.com/quicknotes/quicknotes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management.
// Implementations talk to the remote server through the adapter and keep the
// session token there.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not sign the
	// user in; the caller logs in explicitly afterwards.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and returns the session token
	// with UserID and Username populated.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Logout ends the session on the server and drops the local token.
	Logout(ctx context.Context) error
}

// ClientNoteService defines the client-side contract for note management.
// Mutations go to the server and update the local cache on success; List
// serves the cache when the server cannot be reached.
type ClientNoteService interface {
	// List returns the user's notes, newest first. The second return value
	// reports whether the result came from the offline cache instead of the
	// server.
	List(ctx context.Context, userID int64) (notes []models.Note, fromCache bool, err error)

	// Get fetches a single note from the server.
	Get(ctx context.Context, noteID int64) (models.Note, error)

	// Create validates the content locally, creates the note on the server,
	// and caches the result.
	Create(ctx context.Context, userID int64, content string) (models.Note, error)

	// Update validates the content locally, updates the note on the server,
	// and refreshes the cached copy.
	Update(ctx context.Context, noteID, userID int64, content string) (models.Note, error)

	// Delete removes the note on the server and from the local cache.
	Delete(ctx context.Context, noteID, userID int64) error

	// RefreshCache pulls the full note list from the server and replaces
	// the local cache with it. Used by the background refresh worker.
	RefreshCache(ctx context.Context, userID int64) error
}
