package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when a settings key has never been written.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrDuplicateMutation is returned when a mutation with the same id is
	// already in the pending queue.
	ErrDuplicateMutation = errors.New("mutation already recorded")

	// ErrCorruptSnapshot is returned when the stored dataset snapshot cannot
	// be decoded.
	ErrCorruptSnapshot = errors.New("local dataset snapshot is corrupt")

	// ErrBinNotFound is returned when no bin with the given id belongs to
	// the caller.
	ErrBinNotFound = errors.New("bin was not found")

	// ErrBinAlreadyExists is returned when a bin id collides with a stored one.
	ErrBinAlreadyExists = errors.New("bin already exists")

	// ErrStorageUnavailable wraps failures the backend classified as transient.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrPendingChanges is returned by ReplaceSnapshot when unsynced
	// mutations exist and the caller did not ask to drop them.
	ErrPendingChanges = errors.New("local changes are waiting to be synced")

	// ErrCacheMiss is returned by [BinCache.Get] when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
