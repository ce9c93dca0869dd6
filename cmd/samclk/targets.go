package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/samclock/targets"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported chips",
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range targets.All() {
			fmt.Printf("%s: up to %v, %d generators, %d DPLLs, %d XOSCs\n",
				target.Series, target.MaxCPUFreq, target.Generators, target.Dplls, target.Xoscs)
			fmt.Printf("  %s\n", strings.Join(target.Chips, " "))
		}
	},
}
