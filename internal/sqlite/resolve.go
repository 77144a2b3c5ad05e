// Prefix resolution: mapping a short, human-typed partial id to exactly one
// full stored id.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

// prefixMinLength is the shortest candidate treated as a prefix. Shorter
// strings pass through unchanged and fail later as exact-id lookups.
const prefixMinLength = 6

// ResolveID maps a candidate id or prefix to a full stored id.
//
// Candidates of types.FullIDLength or longer are taken as complete ids and
// returned as-is. Candidates in [prefixMinLength, types.FullIDLength) are
// matched case-sensitively against the start of every stored id: exactly one
// match resolves, zero wraps types.ErrNotFound, and two or more wrap
// types.ErrAmbiguousPrefix listing every match.
func (s *Store) ResolveID(candidate string) (string, error) {
	if len(candidate) < prefixMinLength || len(candidate) >= types.FullIDLength {
		return candidate, nil
	}

	// substr keeps the comparison case-sensitive; LIKE would fold ASCII case.
	rows, err := s.db.Query(
		`SELECT id FROM intents WHERE substr(id, 1, ?) = ? ORDER BY id`,
		len(candidate), candidate,
	)
	if err != nil {
		return "", fmt.Errorf("resolve prefix %q: %w", candidate, err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolve prefix %q: %w", candidate, err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve prefix %q: %w", candidate, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no intent found matching prefix %q: %w", candidate, types.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("prefix %q matches %d intents:\n  %s\n%w",
			candidate, len(matches), strings.Join(matches, "\n  "), types.ErrAmbiguousPrefix)
	}
}
