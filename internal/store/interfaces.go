// Package store implements the persistence layer: PostgreSQL-backed
// repositories for accounts and notes on the server, and an SQLite note
// cache on the client.
package store

import (
	"context"

	"github.com/quicknotes/quicknotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. Username uniqueness is enforced
// case-insensitively by the database, so a concurrent duplicate registration
// surfaces as [ErrUsernameAlreadyExists] even when a pre-check missed it.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the account whose username matches,
	// ignoring case. Returns [ErrUserNotFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// NoteRepository persists notes. Listing is filtered by owner at the query;
// single-note operations are scoped by id (and owner id for mutations) so
// the service layer can distinguish "absent" from "foreign".
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// fields (NoteID, CreatedAt, UpdatedAt) populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetAllUserNotes returns every note owned by userID, newest first.
	GetAllUserNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// GetNoteByID retrieves a single note regardless of owner.
	// Returns [ErrNoteNotFound] when the id does not exist.
	GetNoteByID(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote replaces the content of the note identified by
	// note.NoteID and note.UserID. Returns [ErrNoteNotFound] when no such
	// row exists for that owner.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the note identified by noteID and userID.
	// Returns [ErrNoteNotFound] when no such row exists for that owner.
	DeleteNote(ctx context.Context, noteID, userID int64) error
}
