package store

import (
	"context"

	"github.com/quicknotes/quicknotes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_note_repository_mock.go -package=mock

// ClientNoteRepository is the local offline cache of the signed-in user's
// notes. The server copy is authoritative; the cache only serves reads when
// the server cannot be reached.
type ClientNoteRepository interface {
	// ReplaceAll atomically swaps the cached note set for userID with the
	// given snapshot.
	ReplaceAll(ctx context.Context, userID int64, notes []models.Note) error

	// GetAll returns the cached notes for userID, newest first.
	GetAll(ctx context.Context, userID int64) ([]models.Note, error)

	// Upsert inserts or refreshes a single cached note.
	Upsert(ctx context.Context, note models.Note) error

	// Delete removes a single note from the cache. Deleting an id that is
	// not cached is not an error.
	Delete(ctx context.Context, noteID, userID int64) error
}
