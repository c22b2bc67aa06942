package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned when a session lookup matches no
	// live session (unknown identifier or already expired).
	ErrNoSessionWasFound = errors.New("no session was found")

	// ErrNoValidCode is returned by ConsumeCode when no unused, unexpired
	// code matches. Expired, used, and plain wrong codes are deliberately
	// indistinguishable at this level.
	ErrNoValidCode = errors.New("no valid two-factor code was found")

	// ErrEmailAlreadyConfirmed is returned when confirming an address that
	// has already been confirmed.
	ErrEmailAlreadyConfirmed = errors.New("email is already confirmed")

	// ErrInstallerNotFound is returned when the installer directory holds
	// no artifact for the requested platform.
	ErrInstallerNotFound = errors.New("installer was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
