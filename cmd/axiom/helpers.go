// Shared helpers for axiom CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/axiom/internal/repo"
	"github.com/mesh-intelligence/axiom/internal/sqlite"
	"github.com/mesh-intelligence/axiom/pkg/types"
)

// locateRoot finds the repository root from the current working directory
// using the configured version-control marker.
func locateRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	root, err := repo.FindRoot(cwd, configMarker())
	if err != nil {
		return "", err
	}
	return root, nil
}

// openInitialized locates the repository root and opens its intent store.
// The caller must defer store.Close(). Fails with types.ErrNotInitialized
// when no database exists yet, pointing the user at 'axiom init'.
func openInitialized() (*sqlite.Store, error) {
	root, err := locateRoot()
	if err != nil {
		return nil, err
	}

	dbPath := repo.DatabasePath(repo.IntentDir(root))
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: run 'axiom init' first", types.ErrNotInitialized)
		}
		return nil, fmt.Errorf("stat %s: %w", dbPath, err)
	}

	return sqlite.Open(dbPath)
}

// shortID trims an id to its first eight characters for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncateTitle caps a title at width runes, marking the cut with "..".
func truncateTitle(title string, width int) string {
	runes := []rune(title)
	if len(runes) <= width {
		return title
	}
	return string(runes[:width-2]) + ".."
}
