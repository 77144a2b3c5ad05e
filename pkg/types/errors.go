package types

import "errors"

// Sentinel errors shared across the repository locator, schema manager, and
// record store. Callers match them with errors.Is; each layer wraps them with
// context via fmt.Errorf.
var (
	// ErrNotRepository is returned when no version-control marker directory
	// is found between the starting directory and the filesystem root.
	ErrNotRepository = errors.New("not a repository")

	// ErrNotInitialized is returned when a command requires an initialized
	// .intent directory and none exists.
	ErrNotInitialized = errors.New(".intent not initialized")

	// ErrSchemaMismatch is returned when an existing database's table set
	// does not match the required set. Never repaired automatically.
	ErrSchemaMismatch = errors.New("database schema mismatch")

	// ErrNotFound is returned when an id or prefix matches no stored record.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousPrefix is returned when a prefix matches two or more ids.
	ErrAmbiguousPrefix = errors.New("ambiguous prefix")

	// ErrTitleRequired is returned when intent creation is attempted with an
	// empty title.
	ErrTitleRequired = errors.New("title is required")
)
