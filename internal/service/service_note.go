package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/internal/validators"
	"github.com/quicknotes/quicknotes/models"
)

// noteService is the concrete implementation of NoteService. It enforces
// content validation and per-user ownership on top of the NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewNoteValidator(),
		logger:         logger,
	}
}

// ListNotes returns every note owned by userID, newest first. A user with no
// notes gets an empty list, not an error.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return nil, ErrInvalidDataProvided
	}

	notes, err := n.noteRepository.GetAllUserNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// GetNote returns the note identified by noteID if it is owned by userID.
//
// The note is fetched by id first and ownership checked afterwards, so the
// caller can distinguish a missing note (store.ErrNoteNotFound) from someone
// else's note (ErrNotNoteOwner).
func (n *noteService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, store.ErrNoteNotFound
		}

		log.Err(err).Int64("note_id", noteID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	if note.UserID != userID {
		log.Warn().
			Int64("note_id", noteID).
			Int64("owner_id", note.UserID).
			Int64("user_id", userID).
			Msg("note access denied")
		return models.Note{}, ErrNotNoteOwner
	}

	return note, nil
}

// CreateNote validates the content and persists a new note for note.UserID.
func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, note); err != nil {
		log.Warn().Err(err).Int64("user_id", note.UserID).Msg("note validation failed")
		return models.Note{}, err
	}

	saved, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return saved, nil
}

// UpdateNote replaces the content of an existing note after validating the
// new content and confirming note.UserID owns it.
func (n *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, note, validators.FieldContent); err != nil {
		log.Warn().Err(err).Int64("note_id", note.NoteID).Msg("note validation failed")
		return models.Note{}, err
	}

	if _, err := n.GetNote(ctx, note.NoteID, note.UserID); err != nil {
		return models.Note{}, err
	}

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			// deleted between the ownership check and the update
			return models.Note{}, store.ErrNoteNotFound
		}

		log.Err(err).Int64("note_id", note.NoteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by noteID after confirming userID
// owns it.
func (n *noteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := n.GetNote(ctx, noteID, userID); err != nil {
		return err
	}

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return store.ErrNoteNotFound
		}

		log.Err(err).Int64("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
