package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with
// structured fields (user_id, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note and returns it with server-assigned fields
// (NoteID, CreatedAt, UpdatedAt) populated via the RETURNING clause.
func (p *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(ctx, note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Note
	queryRowErr := p.DB.QueryRowContext(ctx, query, args...).Scan(
		&saved.NoteID,
		&saved.UserID,
		&saved.Content,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if queryRowErr != nil {
		log.Err(queryRowErr).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to save note")

		if errors.Is(queryRowErr, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return saved, nil
}

// GetAllUserNotes retrieves every note owned by the given user, newest first.
//
// Returns an empty slice when the user has no notes.
func (p *noteRepository) GetAllUserNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserNotesQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAllUserNotes").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.GetAllUserNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

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
				Str("func", "noteRepository.GetAllUserNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetAllUserNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNoteByID retrieves a single note by its id regardless of owner; the
// caller compares UserID against the requester to tell "foreign" from
// "absent".
//
// Returns [ErrNoteNotFound] when the id does not exist.
func (p *noteRepository) GetNoteByID(ctx context.Context, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(ctx, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNoteByID").
			Int64("note_id", noteID).
			Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	queryRowErr := p.DB.QueryRowContext(ctx, query, args...).Scan(
		&note.NoteID,
		&note.UserID,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.GetNoteByID").
				Int64("note_id", noteID).
				Msg("note not found")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(queryRowErr).
			Str("func", "noteRepository.GetNoteByID").
			Int64("note_id", noteID).
			Msg("failed to execute query for getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return note, nil
}

// UpdateNote replaces the content of the note identified by note.NoteID and
// note.UserID and refreshes its updated_at timestamp.
//
// The UPDATE is scoped by both id and owner, so an empty result means the
// note either does not exist or belongs to someone else; both surface as
// [ErrNoteNotFound].
func (p *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(ctx, note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", note.NoteID).
			Int64("user_id", note.UserID).
			Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	queryRowErr := p.DB.QueryRowContext(ctx, query, args...).Scan(
		&updated.NoteID,
		&updated.UserID,
		&updated.Content,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.UpdateNote").
				Int64("note_id", note.NoteID).
				Int64("user_id", note.UserID).
				Msg("note not found for owner")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(queryRowErr).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", note.NoteID).
			Int64("user_id", note.UserID).
			Msg("failed to execute update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return updated, nil
}

// DeleteNote removes the note identified by noteID and userID.
//
// Returns [ErrNoteNotFound] when no row matched, i.e. the note is absent or
// owned by another user.
func (p *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ctx, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("note not found for owner")
		return ErrNoteNotFound
	}

	return nil
}
