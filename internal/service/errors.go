package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a caller probing for account existence learns nothing either way.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotNoteOwner is returned when a note exists but belongs to a
	// different user than the one making the request.
	ErrNotNoteOwner = errors.New("note belongs to another user")
)
