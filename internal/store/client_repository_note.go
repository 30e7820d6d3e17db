package store

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/models"
)

type clientNoteRepository struct {
	*DB
	logger *logger.Logger
}

func NewClientNoteRepository(db *DB, logger *logger.Logger) ClientNoteRepository {
	return &clientNoteRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the cached note set for the user inside one transaction
// so a crashed refresh can never leave the cache half empty.
func (l *clientNoteRepository) ReplaceAll(ctx context.Context, userID int64, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "clientNoteRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin cache refresh transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedNotes, userID); err != nil {
		log.Err(err).
			Str("func", "clientNoteRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to clear cached notes")
		return fmt.Errorf("failed to clear cached notes: %w", err)
	}

	for _, note := range notes {
		_, execErr := tx.ExecContext(ctx, upsertCachedNote,
			note.NoteID,
			userID,
			note.Content,
			note.CreatedAt,
			note.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "clientNoteRepository.ReplaceAll").
				Int64("user_id", userID).
				Int64("note_id", note.NoteID).
				Msg("failed to cache note")
			return fmt.Errorf("failed to cache note (note_id=%d): %w", note.NoteID, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "clientNoteRepository.ReplaceAll").
			Int64("user_id", userID).
			Int("notes_count", len(notes)).
			Msg("failed to commit cache refresh")
		return fmt.Errorf("failed to commit cache refresh: %w", commitErr)
	}

	return nil
}

func (l *clientNoteRepository) GetAll(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedNotes, userID)
	if err != nil {
		log.Err(err).
			Str("func", "clientNoteRepository.GetAll").
			Int64("user_id", userID).
			Msg("failed to execute query for getting cached notes")
		return nil, fmt.Errorf("failed to query cached notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.UserID,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "clientNoteRepository.GetAll").
				Int64("user_id", userID).
				Msg("failed to scan cached note row")
			return nil, fmt.Errorf("failed to scan cached note row: %w", scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "clientNoteRepository.GetAll").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("failed to read cached notes: %w", rowsErr)
	}

	return notes, nil
}

func (l *clientNoteRepository) Upsert(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertCachedNote,
		note.NoteID,
		note.UserID,
		note.Content,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "clientNoteRepository.Upsert").
			Int64("user_id", note.UserID).
			Int64("note_id", note.NoteID).
			Msg("failed to execute upsert for cached note")
		return fmt.Errorf("failed to cache note (note_id=%d): %w", note.NoteID, err)
	}

	return nil
}

func (l *clientNoteRepository) Delete(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteCachedNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "clientNoteRepository.Delete").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to delete cached note")
		return fmt.Errorf("failed to delete cached note (note_id=%d): %w", noteID, err)
	}

	return nil
}
