package validators

import "errors"

// Validation errors surfaced to callers as field-level messages. The content
// errors double as the user-facing text, so their wording is part of the
// API contract.
var (
	// ErrEmptyContent is returned when the note content is empty after
	// trimming whitespace.
	ErrEmptyContent = errors.New("Content cannot be empty")

	// ErrContentTooLong is returned when the note content exceeds the
	// maximum allowed length.
	ErrContentTooLong = errors.New("Content cannot exceed 1000 characters")

	// ErrInvalidUserID is returned when a note carries no positive owner id.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUnsupportedType is returned when Validate receives a model it does
	// not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when an unrecognized field name is passed
	// to Validate.
	ErrUnknownField = errors.New("unknown field for validation")
)
