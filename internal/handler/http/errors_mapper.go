package http

import (
	"errors"
	"net/http"

	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/internal/utils"
	"github.com/quicknotes/quicknotes/internal/validators"
	"github.com/quicknotes/quicknotes/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotNoteOwner:            http.StatusForbidden,

	validators.ErrEmptyContent:   http.StatusBadRequest,
	validators.ErrContentTooLong: http.StatusBadRequest,
	validators.ErrInvalidUserID:  http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrNoteNotFound:          http.StatusNotFound,
	store.ErrNoteNotSaved:          http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// userFacingMessage translates internal errors into response messages. The
// generic credential message never distinguishes an unknown username from a
// wrong password.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid login attempt"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "session is expired or invalid"
	case errors.Is(err, service.ErrNotNoteOwner):
		return "note belongs to another user"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "invalid data provided"
	case errors.Is(err, validators.ErrEmptyContent):
		return validators.ErrEmptyContent.Error()
	case errors.Is(err, validators.ErrContentTooLong):
		return validators.ErrContentTooLong.Error()
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return "Username already exists"
	case errors.Is(err, store.ErrNoteNotFound):
		return "note was not found"
	default:
		return http.StatusText(statusFromError(err))
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
