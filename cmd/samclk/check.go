package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <plan.yaml>...",
	Short: "Check clock plans",
	Long:  "Check clock plans and print the frequency of every clock and peripheral channel.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			tree, err := load(path)
			if err != nil {
				log.Printf("%s: %v", path, err)
				failed = true
				continue
			}

			fmt.Printf("%s: %s, CPU at %v\n", path, tree.Plan.Chip, tree.CPUFreq())
			for _, name := range tree.Order {
				f, _ := tree.Freq(name)
				if src := tree.Source(name); src != "" {
					fmt.Printf("  %-10s %-14v from %s\n", name, f, src)
				} else {
					fmt.Printf("  %-10s %v\n", name, f)
				}
			}
			for _, r := range tree.Routes {
				fmt.Printf("  %-10s %-14v from %s\n", r.Channel, r.Freq, r.Generator)
			}
		}
		if failed {
			log.Fatal("check failed")
		}
	},
}
