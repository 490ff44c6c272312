// Run command: execute one pattern unit's demo, or all of them.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alestormoody/design-pattern/catalog"
)

var flagRunAll bool

var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run a pattern unit's demo",
	Long: `Run writes the demo transcript of one pattern unit to stdout.
With --all, every unit runs in catalog order, each under a header line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if flagRunAll {
			if len(args) > 0 {
				return errors.New("--all takes no pattern argument")
			}
			for i, u := range catalog.Units() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "=== %s ===\n", u.Name)
				u.Demo(out)
			}
			return nil
		}

		if len(args) == 0 {
			return errors.New("missing pattern name (or use --all)")
		}
		u, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		u.Demo(out)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAll, "all", false, "run every pattern in catalog order")
}
