package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/utils"
	"github.com/quicknotes/quicknotes/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, username, ok := authenticatedUser(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	log := logger.FromRequest(r).With().Str("username", username).Logger()

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing notes failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, username, ok := authenticatedUser(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	log := logger.FromRequest(r).With().Str("username", username).Logger()

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, models.Note{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		log.Err(err).Msg("note creation failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	log.Info().Int64("note_id", note.NoteID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, username, ok := authenticatedUser(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	log := logger.FromRequest(r).With().Str("username", username).Logger()

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note lookup failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, username, ok := authenticatedUser(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	log := logger.FromRequest(r).With().Str("username", username).Logger()

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, models.Note{
		NoteID:  noteID,
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note update failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	log.Info().Int64("note_id", note.NoteID).Msg("note updated")
	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, username, ok := authenticatedUser(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	log := logger.FromRequest(r).With().Str("username", username).Logger()

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note deletion failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	log.Info().Int64("note_id", noteID).Msg("note deleted")
	w.WriteHeader(http.StatusNoContent)
}

func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// authenticatedUser pulls the identity stored by the auth middleware out of
// the request context.
func authenticatedUser(ctx context.Context) (userID int64, username string, ok bool) {
	userID, ok = utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, "", false
	}
	username, _ = utils.GetUsernameFromContext(ctx)
	return userID, username, true
}
