package models

import "time"

// Note is a personal text note. Every note belongs to exactly one user and
// is visible and mutable only by its owner.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// UserID is the identifier of the owning account. It is populated from
	// the authenticated request context, never from the request body.
	UserID int64 `json:"-"`

	// Content is the note text. Must be non-empty after trimming and at
	// most MaxNoteContentLength characters.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last content change.
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxNoteContentLength is the maximum note length in Unicode code points.
const MaxNoteContentLength = 1000

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
