package store

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [ClientNoteRepository].
type ClientStorages struct {
	// NoteRepository is the SQLite-backed offline cache of the signed-in
	// user's notes.
	NoteRepository ClientNoteRepository
}

// NewClientStorages initialises the client storage layer. It opens an SQLite
// connection to the file path in cfg.DB.DSN, creating the database file and
// cache schema if they do not yet exist.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		NoteRepository: NewClientNoteRepository(db, logger),
	}, nil
}
