// Root command for the patterns CLI.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "A runnable catalog of classic design patterns",
	Long: `patterns is a teaching catalog of eleven classic object-oriented
design patterns. Every pattern is a self-contained unit with a runnable
demo whose console output is the unit's documented sample output.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}
