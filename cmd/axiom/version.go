// Version command for the axiom CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/pkg/axiom"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the axiom version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "axiom", axiom.Version)
	},
}
