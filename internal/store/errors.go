package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// owner fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one owner record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when a public lookup (e.g. resolving a guide
	// by its slug) matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrNotFoundOrForbidden is returned when a scoped mutation or lookup
	// affects zero rows. The record either does not exist or belongs to a
	// different owner; repositories never distinguish between the two.
	ErrNotFoundOrForbidden = errors.New("record not found or not owned by caller")

	// ErrSlugAlreadyExists is returned when the database rejects a property
	// INSERT because the generated slug collides with an existing one.
	ErrSlugAlreadyExists = errors.New("slug already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a patch with no fields to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
