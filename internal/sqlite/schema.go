// Schema DDL and conformance checking for the intent database.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

// Schema DDL for all tables. CREATE TABLE IF NOT EXISTS keeps creation
// idempotent: re-declaring an existing table is a no-op, not an error.
const (
	createIntents = `CREATE TABLE IF NOT EXISTS intents (
    id TEXT PRIMARY KEY,
    title TEXT,
    problem TEXT,
    context TEXT,
    constraints TEXT,
    status TEXT,
    created_at TEXT,
    updated_at TEXT
);`

	createAssumptions = `CREATE TABLE IF NOT EXISTS assumptions (
    id TEXT PRIMARY KEY,
    intent_id TEXT,
    statement TEXT,
    confidence REAL,
    risk_if_false TEXT,
    created_at TEXT,
    last_validated_at TEXT,
    FOREIGN KEY (intent_id) REFERENCES intents(id)
);`

	createDecisions = `CREATE TABLE IF NOT EXISTS decisions (
    id TEXT PRIMARY KEY,
    intent_id TEXT,
    summary TEXT,
    rationale TEXT,
    alternatives TEXT,
    tradeoffs TEXT,
    created_at TEXT,
    FOREIGN KEY (intent_id) REFERENCES intents(id)
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createIntents,
	createAssumptions,
	createDecisions,
}

// requiredTables is the exact table set an existing database must carry.
var requiredTables = []string{"intents", "assumptions", "decisions"}

// createSchema runs the full DDL against db.
func createSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// verifySchema compares the database's table set against requiredTables.
// Only table names are inspected, never column definitions: a table with the
// right name but wrong columns passes. Any mismatch is terminal; the check
// never adds or drops tables, because silent repair could destroy user data.
func verifySchema(db *sql.DB) error {
	rows, err := db.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	)
	if err != nil {
		return fmt.Errorf("read table names: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan table name: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read table names: %w", err)
	}

	var missing, extra []string
	for _, name := range requiredTables {
		if !existing[name] {
			missing = append(missing, name)
		}
	}
	required := make(map[string]bool, len(requiredTables))
	for _, name := range requiredTables {
		required[name] = true
	}
	for name := range existing {
		if !required[name] {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)

	var sb strings.Builder
	sb.WriteString("detected:\n")
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "  Missing tables: %s\n", strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		fmt.Fprintf(&sb, "  Unexpected tables: %s\n", strings.Join(extra, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString("This indicates a schema version conflict.\n")
	sb.WriteString("Do not attempt automatic migration.\n")
	sb.WriteString("Manual intervention required.\n")
	sb.WriteString("\n")
	sb.WriteString("If you need to reset, backup your data and delete intent.db")

	return fmt.Errorf("%w %s", types.ErrSchemaMismatch, sb.String())
}
