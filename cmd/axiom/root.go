// Root command for the axiom CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/axiom/pkg/axiom"
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:     "axiom",
	Short:   "Axiom is an intent-first memory layer for software decisions",
	Version: axiom.Version,
	Long: `Axiom records intents: design decisions with their problem, context,
and constraints. Records live in a per-repository database under .intent/,
created by 'axiom init' at the repository root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .axiom.yaml in CWD or home)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
