package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/adapter"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/internal/validators"
	"github.com/quicknotes/quicknotes/models"
)

type clientNoteService struct {
	adapter   adapter.ServerAdapter
	cache     store.ClientNoteRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, cache store.ClientNoteRepository, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		adapter:   serverAdapter,
		cache:     cache,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

func (s *clientNoteService) List(ctx context.Context, userID int64) ([]models.Note, bool, error) {
	log := s.logger.With().Str("func", "List").Logger()

	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrServerUnavailable) {
			return nil, false, mapAdapterError(err)
		}

		log.Warn().Err(err).Msg("server unreachable, serving cached notes")

		cached, cacheErr := s.cache.GetAll(ctx, userID)
		if cacheErr != nil {
			return nil, false, fmt.Errorf("reading note cache: %w", cacheErr)
		}

		return cached, true, nil
	}

	s.replaceCache(ctx, userID, notes)

	return notes, false, nil
}

func (s *clientNoteService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := s.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (s *clientNoteService) Create(ctx context.Context, userID int64, content string) (models.Note, error) {
	log := s.logger.With().Str("func", "Create").Logger()

	if err := s.validator.Validate(ctx, models.Note{Content: content}, validators.FieldContent); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.CreateNote(ctx, content)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	note.UserID = userID
	if err := s.cache.Upsert(ctx, note); err != nil {
		log.Warn().Err(err).Int64("note_id", note.NoteID).Msg("failed to cache created note")
	}

	return note, nil
}

func (s *clientNoteService) Update(ctx context.Context, noteID, userID int64, content string) (models.Note, error) {
	log := s.logger.With().Str("func", "Update").Logger()

	if err := s.validator.Validate(ctx, models.Note{Content: content}, validators.FieldContent); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.UpdateNote(ctx, noteID, content)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	note.UserID = userID
	if err := s.cache.Upsert(ctx, note); err != nil {
		log.Warn().Err(err).Int64("note_id", note.NoteID).Msg("failed to cache updated note")
	}

	return note, nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID, userID int64) error {
	log := s.logger.With().Str("func", "Delete").Logger()

	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		return mapAdapterError(err)
	}

	if err := s.cache.Delete(ctx, noteID, userID); err != nil {
		log.Warn().Err(err).Int64("note_id", noteID).Msg("failed to evict deleted note from cache")
	}

	return nil
}

func (s *clientNoteService) RefreshCache(ctx context.Context, userID int64) error {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	for i := range notes {
		notes[i].UserID = userID
	}

	if err := s.cache.ReplaceAll(ctx, userID, notes); err != nil {
		return fmt.Errorf("replacing note cache: %w", err)
	}

	return nil
}

// replaceCache rewrites the local cache after a successful pull. Cache
// failures only degrade offline reads, so they are logged and swallowed.
func (s *clientNoteService) replaceCache(ctx context.Context, userID int64, notes []models.Note) {
	for i := range notes {
		notes[i].UserID = userID
	}

	if err := s.cache.ReplaceAll(ctx, userID, notes); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh note cache")
	}
}
