package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/models"
)

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildFindUserByUsernameQuery(ctx, "Alice")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "Alice", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "lower(username) = lower($1)")

	for _, c := range userColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildInsertUserQuery(t *testing.T) {
	ctx := context.Background()
	user := models.User{Username: "alice", PasswordHash: "$2a$10$hash"}

	query, args, err := buildInsertUserQuery(ctx, user)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "alice", args[0])
	assert.Equal(t, "$2a$10$hash", args[1])

	q := strings.ToUpper(query)
	assert.Contains(t, q, "INSERT INTO USERS")
	assert.Contains(t, q, "RETURNING")
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
}

func Test_buildInsertNoteQuery(t *testing.T) {
	ctx := context.Background()
	note := models.Note{UserID: 7, Content: "buy milk"}

	query, args, err := buildInsertNoteQuery(ctx, note)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "buy milk", args[1])

	q := strings.ToUpper(query)
	assert.Contains(t, q, "INSERT INTO NOTES")
	assert.Contains(t, q, "RETURNING")
}

func Test_buildSelectUserNotesQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectUserNotesQuery(ctx, 42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, query, "$1")

	for _, c := range noteColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectNoteByIDQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectNoteByIDQuery(ctx, 3)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(3), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "note_id")
	// lookup is by id only, ownership is decided by the caller
	require.NotContains(t, q, "user_id =")
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	ctx := context.Background()
	note := models.Note{NoteID: 3, UserID: 7, Content: "edited"}

	query, args, err := buildUpdateNoteQuery(ctx, note)
	require.NoError(t, err)

	// content plus the two WHERE keys; NOW() is inlined, not a placeholder
	require.Len(t, args, 3)
	assert.Equal(t, "edited", args[0])
	assert.Contains(t, args, int64(3))
	assert.Contains(t, args, int64(7))

	q := strings.ToLower(query)
	assert.Contains(t, q, "update notes")
	assert.Contains(t, q, "set content")
	assert.Contains(t, q, "updated_at = now()")
	assert.Contains(t, q, "note_id")
	assert.Contains(t, q, "user_id")
	assert.Contains(t, q, "returning")
}

func Test_buildDeleteNoteQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildDeleteNoteQuery(ctx, 3, 7)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Contains(t, args, int64(3))
	assert.Contains(t, args, int64(7))

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from notes")
	assert.Contains(t, q, "note_id")
	assert.Contains(t, q, "user_id")
}
