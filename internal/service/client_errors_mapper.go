package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quicknotes/quicknotes/internal/adapter"
	"github.com/quicknotes/quicknotes/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error so that the TUI never has to know about HTTP status codes.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, extractBody(err))

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.Contains(err.Error(), "Invalid login attempt") {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotNoteOwner

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUsernameAlreadyExists
	}

	return err
}

// extractBody strips the sentinel prefix from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
