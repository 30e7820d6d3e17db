package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// account fails because a user with the same username (in any casing)
	// already exists in the database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match an account
	// produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a query or mutation targets a note
	// that does not exist (or, for owner-scoped mutations, does not exist
	// for that owner).
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteNotSaved is returned when an INSERT completes without error but
	// the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
