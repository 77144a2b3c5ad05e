// List command: print all intents, newest first.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all intents",
	Long: `List prints every recorded intent, most recent first, as a table of
short id, title, status, and creation date.

Example:
  axiom list
  axiom list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openInitialized()
		if err != nil {
			return err
		}
		defer store.Close()

		intents, err := store.ListIntents()
		if err != nil {
			return err
		}

		if limit := configListLimit(); limit > 0 && len(intents) > limit {
			intents = intents[:limit]
		}

		out := cmd.OutOrStdout()

		if flagJSON {
			data, err := json.MarshalIndent(intents, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal intents: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(intents) == 0 {
			fmt.Fprintln(out, "No intents found.")
			return nil
		}

		printIntentTable(cmd, intents)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
}

// printIntentTable prints intents in a fixed-width, human-readable table.
func printIntentTable(cmd *cobra.Command, intents []*types.Intent) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-10s %-40s %-12s %s\n", "ID", "Title", "Status", "Created")
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, in := range intents {
		fmt.Fprintf(out, "%-10s %-40s %-12s %s\n",
			shortID(in.ID),
			truncateTitle(in.Title, 40),
			in.Status,
			in.CreatedAt.Format("2006-01-02"),
		)
	}
}
