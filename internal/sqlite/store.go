// Package sqlite implements the intent store on an embedded SQLite database.
// Opening the store creates the schema for a fresh file and verifies table
// conformance for an existing one; it never migrates.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// Store provides intent persistence over a single database file. Every
// operation is one short statement or transaction; concurrent invocations
// rely on SQLite's own file locking.
type Store struct {
	db *sql.DB
}

// Open opens the intent database at path, creating it with the full schema
// when the file does not exist. For an existing file the table set is
// verified against the required schema and any drift is a terminal error
// wrapping types.ErrSchemaMismatch.
func Open(path string) (*Store, error) {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)
	if statErr != nil && !fresh {
		return nil, fmt.Errorf("stat %s: %w", path, statErr)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if fresh {
		if err := createSchema(db); err != nil {
			db.Close()
			return nil, err
		}
	} else {
		if err := verifySchema(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
