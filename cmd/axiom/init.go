// Init command: create or validate the .intent structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/internal/meta"
	"github.com/mesh-intelligence/axiom/internal/repo"
	"github.com/mesh-intelligence/axiom/internal/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the .intent directory structure",
	Long: `Init creates .intent/ at the repository root with an empty intent
database and a meta.json descriptor. Safe to re-run: an already-initialized
repository is left untouched, and an existing database is only checked for
schema conformance, never migrated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := locateRoot()
		if err != nil {
			return err
		}

		intentDir := repo.IntentDir(root)
		if err := os.MkdirAll(intentDir, 0o755); err != nil {
			return fmt.Errorf("create %s directory: %w", repo.IntentDirName, err)
		}

		store, err := sqlite.Open(repo.DatabasePath(intentDir))
		if err != nil {
			return err
		}
		store.Close()

		if err := meta.Ensure(intentDir, root); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s/ at: %s\n", repo.IntentDirName, intentDir)
		return nil
	},
}
