package store

const (
	upsertCachedNote = `
		INSERT INTO cached_notes (
			note_id,
			user_id,
			content,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (note_id, user_id) DO UPDATE SET
			content    = excluded.content,
			updated_at = excluded.updated_at;`

	getAllCachedNotes = `
		SELECT
			note_id,
			user_id,
			content,
			created_at,
			updated_at
		FROM cached_notes
		WHERE user_id = $1
		ORDER BY created_at DESC, note_id DESC;`

	deleteCachedNote = `
		DELETE FROM cached_notes
		WHERE note_id = $1 AND user_id = $2;`

	deleteAllCachedNotes = `
		DELETE FROM cached_notes
		WHERE user_id = $1;`
)
