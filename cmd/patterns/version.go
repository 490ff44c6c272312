// Version command for the patterns CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version, set at build time via -ldflags when released.
var version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the patterns version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "patterns", version)
	},
}
