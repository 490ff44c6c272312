// Package main provides the patterns CLI: each unit of the design-pattern
// catalog is independently invocable, and its printed output is the unit's
// documented sample output.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
