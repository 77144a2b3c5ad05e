// New command: create an intent interactively.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new intent interactively",
	Long: `New prompts for a title and three free-text fields (problem, context,
constraints) and stores the intent with status draft. Each free-text field is
ended by pressing Enter three times; blank lines inside the text are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openInitialized()
		if err != nil {
			return err
		}
		defer store.Close()

		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Create a new intent")
		fmt.Fprintln(out, strings.Repeat("=", 50))

		title, err := readLine(in, out, "Title: ")
		if err != nil {
			return err
		}
		if title == "" {
			return types.ErrTitleRequired
		}

		problem, err := readMultiline(in, out, "\nProblem:")
		if err != nil {
			return err
		}
		context, err := readMultiline(in, out, "\nContext:")
		if err != nil {
			return err
		}
		constraints, err := readMultiline(in, out, "\nConstraints:")
		if err != nil {
			return err
		}

		intent := &types.Intent{
			Title:       title,
			Problem:     problem,
			Context:     context,
			Constraints: constraints,
		}
		id, err := store.CreateIntent(intent)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nCreated intent: %s\n", id)
		fmt.Fprintf(out, "  Title: %s\n", intent.Title)
		fmt.Fprintf(out, "  Status: %s\n", intent.Status)
		return nil
	},
}
