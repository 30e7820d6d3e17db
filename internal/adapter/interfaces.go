// Package adapter provides transport-layer abstractions for communicating
// with the quicknotes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/quicknotes/quicknotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the quicknotes
// server. Implementations are responsible for serialisation, session token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Registration does not
	// start a session; the caller signs in explicitly afterwards.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned session token via SetToken and returns the token with UserID
	// and Username populated.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Logout tells the server to clear the session cookie and drops the
	// locally held token.
	Logout(ctx context.Context) error

	// ListNotes fetches all notes of the signed-in user, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by id.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// CreateNote creates a new note with the given content and returns it
	// with server-assigned fields populated.
	CreateNote(ctx context.Context, content string) (models.Note, error)

	// UpdateNote replaces the content of an existing note.
	UpdateNote(ctx context.Context, noteID int64, content string) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, noteID int64) error
}
