// List command: print the catalog index.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alestormoody/design-pattern/catalog"
)

var flagListYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pattern units in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if flagListYAML {
			b, err := catalog.MarshalIndex()
			if err != nil {
				return fmt.Errorf("marshal index: %w", err)
			}
			fmt.Fprint(out, string(b))
			return nil
		}

		for _, u := range catalog.Units() {
			fmt.Fprintf(out, "%s - %s\n", u.Name, u.Summary)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListYAML, "yaml", false, "output the index as YAML")
}
