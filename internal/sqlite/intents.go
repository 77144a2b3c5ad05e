// Intent record operations: create, list, fetch.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

// timeLayout is the stored timestamp form: RFC 3339 with a fixed-width
// nanosecond fraction, so lexical order on the text column equals
// chronological order even for back-to-back creations. Reads accept any
// RFC 3339 variant.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateIntent persists a new intent built from the caller-supplied title and
// free-text fields. The id, draft status, and timestamps are generated here;
// created_at and updated_at receive the same instant. Returns the new id.
//
// The primary-key constraint makes an id collision fail the insert rather
// than overwrite an existing record.
func (s *Store) CreateIntent(in *types.Intent) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	in.ID = uuid.NewString()
	in.Status = types.StatusDraft
	in.CreatedAt = now
	in.UpdatedAt = now

	_, err := s.db.Exec(
		`INSERT INTO intents (id, title, problem, context, constraints, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Problem, in.Context, in.Constraints,
		in.Status, now.Format(timeLayout), now.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert intent: %w", err)
	}
	return in.ID, nil
}

// ListIntents returns all intents ordered by creation time descending.
// The id tiebreak keeps relative order stable when timestamps collide.
func (s *Store) ListIntents() ([]*types.Intent, error) {
	rows, err := s.db.Query(
		`SELECT id, title, problem, context, constraints, status, created_at, updated_at
		 FROM intents
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	defer rows.Close()

	var intents []*types.Intent
	for rows.Next() {
		intent, err := scanIntent(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	return intents, nil
}

// GetIntent fetches one intent by its exact id. Returns an error wrapping
// types.ErrNotFound when no record carries that id.
func (s *Store) GetIntent(id string) (*types.Intent, error) {
	row := s.db.QueryRow(
		`SELECT id, title, problem, context, constraints, status, created_at, updated_at
		 FROM intents
		 WHERE id = ?`,
		id,
	)
	intent, err := scanIntent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("intent %q: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get intent %s: %w", id, err)
	}
	return intent, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanIntent hydrates one intents row into a types.Intent.
func scanIntent(row rowScanner) (*types.Intent, error) {
	var in types.Intent
	var createdAt, updatedAt string

	err := row.Scan(
		&in.ID, &in.Title, &in.Problem, &in.Context, &in.Constraints,
		&in.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if in.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if in.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	return &in, nil
}
