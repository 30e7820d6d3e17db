package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/models"
)

func TestNoteValidator_Valid(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Note{UserID: 1, Content: "Buy milk"})
	require.NoError(t, err)
}

func TestNoteValidator_PointerForm(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, &models.Note{UserID: 1, Content: "Buy milk"})
	require.NoError(t, err)
}

func TestNoteValidator_EmptyContent(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Note{UserID: 1, Content: ""})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestNoteValidator_WhitespaceOnlyContent(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Note{UserID: 1, Content: "   \t\n  "})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestNoteValidator_ContentLengthBoundary(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	atLimit := strings.Repeat("a", models.MaxNoteContentLength)
	require.NoError(t, v.Validate(ctx, models.Note{UserID: 1, Content: atLimit}))

	overLimit := strings.Repeat("a", models.MaxNoteContentLength+1)
	require.ErrorIs(t, v.Validate(ctx, models.Note{UserID: 1, Content: overLimit}), ErrContentTooLong)
}

func TestNoteValidator_ContentLengthCountsRunes(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	// 1000 multibyte characters are within the limit even though the byte
	// length is far larger.
	content := strings.Repeat("я", models.MaxNoteContentLength)
	require.NoError(t, v.Validate(ctx, models.Note{UserID: 1, Content: content}))
}

func TestNoteValidator_InvalidUserID(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, models.Note{UserID: 0, Content: "x"}), ErrInvalidUserID)
	require.ErrorIs(t, v.Validate(ctx, models.Note{UserID: -1, Content: "x"}), ErrInvalidUserID)
}

func TestNoteValidator_FieldScoping(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	// only content is checked, so the missing owner id passes
	err := v.Validate(ctx, models.Note{Content: "x"}, FieldContent)
	require.NoError(t, err)

	err = v.Validate(ctx, models.Note{UserID: 1, Content: ""}, FieldUserID)
	require.NoError(t, err)
}

func TestNoteValidator_UnknownField(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Note{UserID: 1, Content: "x"}, "nope")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.User{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
