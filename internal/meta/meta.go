// Package meta manages the meta.json descriptor that records where and when
// a .intent directory was initialized, and which schema version it carries.
package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SchemaVersion is stamped into every descriptor this build writes.
const SchemaVersion = "0.1"

// FileName is the descriptor file inside the .intent directory.
const FileName = "meta.json"

// requiredFields are the keys a descriptor must carry to be considered valid.
// Only presence is checked; values are never validated.
var requiredFields = []string{"repo_path", "created_at", "schema_version"}

// Descriptor is the on-disk shape of meta.json.
type Descriptor struct {
	RepoPath      string `json:"repo_path"`
	CreatedAt     string `json:"created_at"`
	SchemaVersion string `json:"schema_version"`
}

// Ensure makes sure intentDir holds a valid descriptor. A missing, empty,
// unparsable, or field-incomplete meta.json is rewritten with the current
// repo root, timestamp, and schema version. A valid descriptor is left
// untouched, so the original init time survives re-initialization.
func Ensure(intentDir, repoRoot string) error {
	path := filepath.Join(intentDir, FileName)

	if descriptorValid(path) {
		return nil
	}

	absRoot, err := filepath.Abs(repoRoot)
	if err != nil {
		return fmt.Errorf("resolve repo root: %w", err)
	}

	desc := Descriptor{
		RepoPath:      absRoot,
		CreatedAt:     time.Now().Format(time.RFC3339Nano),
		SchemaVersion: SchemaVersion,
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", FileName, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}

// descriptorValid reports whether path holds parseable JSON with all required
// fields present. Any read or parse failure means the descriptor needs
// rewriting, not an error for the caller.
func descriptorValid(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if len(data) == 0 {
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return false
		}
	}
	return true
}
