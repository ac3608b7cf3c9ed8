package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrElementNotFound is returned when a query or replace targets an
	// element id that does not exist in the database.
	ErrElementNotFound = errors.New("element was not found")

	// ErrDuplicateElement is returned when an INSERT fails because an
	// element with the same id already exists.
	ErrDuplicateElement = errors.New("element id already exists")

	// ErrElementNotSaved is returned when a write completes without error
	// but the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrElementNotSaved = errors.New("element was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan element row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan element rows")

	// ErrEncodingData is returned when an element's attribute map cannot be
	// encoded to JSON for the jsonb column.
	ErrEncodingData = errors.New("failed to encode element data")

	// ErrDecodingData is returned when a jsonb column value cannot be
	// decoded back into an attribute map.
	ErrDecodingData = errors.New("failed to decode element data")
)
