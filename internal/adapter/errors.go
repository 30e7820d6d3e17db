package adapter

import "errors"

// Sentinel errors mapped from server responses. [ErrServerUnavailable] is
// special: it marks transport-level failures (connection refused, timeout)
// where the server was never reached, which is the signal for the client to
// serve reads from its offline cache.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrServerUnavailable = errors.New("server unavailable")
)
