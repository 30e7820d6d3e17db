package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quicknotes/quicknotes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldContent targets the note text.
	FieldContent = "content"

	// FieldUserID targets the owner identifier of a note.
	FieldUserID = "user_id"
)

// NoteValidator implements the Validator interface for the Note model.
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of models.Note are accepted.
//
// Returns ErrUnsupportedType if obj is not a note.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNote validates a single Note model.
//
// Default validated fields (when none specified): UserID, Content.
//
// Content must be non-empty after trimming whitespace and at most
// [models.MaxNoteContentLength] Unicode code points. Exactly the maximum
// length is accepted.
func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldContent:
			if strings.TrimSpace(note.Content) == "" {
				return ErrEmptyContent
			}
			if utf8.RuneCountInString(note.Content) > models.MaxNoteContentLength {
				return ErrContentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
