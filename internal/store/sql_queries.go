package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/quicknotes/quicknotes/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// numbered placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "username", "password_hash", "created_at"}
	noteColumns = []string{"note_id", "user_id", "content", "created_at", "updated_at"}
)

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING user_id, username, password_hash, created_at").
		ToSql()
}

// buildFindUserByUsernameQuery matches the username ignoring case; the same
// expression backs the unique index created by the migrations, so lookup and
// constraint agree on what "taken" means.
func buildFindUserByUsernameQuery(ctx context.Context, username string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where("LOWER(username) = LOWER(?)", username).
		ToSql()
}

func buildInsertNoteQuery(ctx context.Context, note models.Note) (string, []any, error) {
	return psql.
		Insert(note.TableName()).
		Columns("user_id", "content").
		Values(note.UserID, note.Content).
		Suffix("RETURNING note_id, user_id, content, created_at, updated_at").
		ToSql()
}

func buildSelectUserNotesQuery(ctx context.Context, userID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
}

func buildSelectNoteByIDQuery(ctx context.Context, noteID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

// buildUpdateNoteQuery scopes the mutation by owner as well as id, so a
// stale ownership check in the caller can never touch a foreign row.
func buildUpdateNoteQuery(ctx context.Context, note models.Note) (string, []any, error) {
	return psql.
		Update(note.TableName()).
		Set("content", note.Content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"note_id": note.NoteID, "user_id": note.UserID}).
		Suffix("RETURNING note_id, user_id, content, created_at, updated_at").
		ToSql()
}

func buildDeleteNoteQuery(ctx context.Context, noteID, userID int64) (string, []any, error) {
	return psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
}
