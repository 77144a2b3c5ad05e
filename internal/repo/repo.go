// Package repo locates the project root by walking up from a starting
// directory to the nearest version-control marker, and derives the .intent
// directory from it.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

// DefaultMarker is the version-control marker directory searched for when no
// override is configured.
const DefaultMarker = ".git"

// IntentDirName is the per-repository data directory created at the root.
const IntentDirName = ".intent"

// FindRoot walks from start up through its ancestors and returns the first
// directory (start included) that contains a directory named marker. It is a
// pure lookup: no caching, no side effects.
//
// Returns an error wrapping types.ErrNotRepository when the filesystem root
// is reached without finding the marker.
func FindRoot(start, marker string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		info, err := os.Stat(filepath.Join(current, marker))
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%s directory not found: %w", marker, types.ErrNotRepository)
		}
		current = parent
	}
}

// IntentDir returns the .intent directory path for the given repository root.
func IntentDir(root string) string {
	return filepath.Join(root, IntentDirName)
}

// DatabasePath returns the intent.db path inside the .intent directory.
func DatabasePath(intentDir string) string {
	return filepath.Join(intentDir, "intent.db")
}
