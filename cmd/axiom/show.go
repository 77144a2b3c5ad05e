// Show command: print one intent in full detail.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-prefix>",
	Short: "Show a specific intent by id or prefix",
	Long: `Show prints the full detail of one intent. A short id prefix (six or
more characters) is accepted and must match exactly one stored intent.

Example:
  axiom show 3f2a9c1d
  axiom show 3f2a9c1d-7b44-4e02-a81f-9d3b6c5e0f12 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openInitialized()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.ResolveID(args[0])
		if err != nil {
			return err
		}

		intent, err := store.GetIntent(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if flagJSON {
			data, err := json.MarshalIndent(intent, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal intent: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printIntentDetails(cmd, intent)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
}

// printIntentDetails prints every field of an intent; the free-text sections
// are emitted verbatim, blank lines included, and skipped when empty.
func printIntentDetails(cmd *cobra.Command, in *types.Intent) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Intent: %s\n", in.ID)
	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintf(out, "Title: %s\n", in.Title)
	fmt.Fprintf(out, "Status: %s\n", in.Status)
	fmt.Fprintf(out, "Created: %s\n", in.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Updated: %s\n", in.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out)

	if in.Problem != "" {
		fmt.Fprintf(out, "Problem:\n%s\n\n", in.Problem)
	}
	if in.Context != "" {
		fmt.Fprintf(out, "Context:\n%s\n\n", in.Context)
	}
	if in.Constraints != "" {
		fmt.Fprintf(out, "Constraints:\n%s\n\n", in.Constraints)
	}
}
