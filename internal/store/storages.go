package store

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages initialises the server storage layer:
//  1. Opens a PostgreSQL connection using cfg.DB.DSN.
//  2. Applies pending schema migrations via [DB.Migrate].
//  3. Wires fresh user and note repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}, nil
}
