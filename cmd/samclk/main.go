// Command samclk checks clock plans for SAM D5x/E5x devices and generates
// the Go code that builds them.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/samclock/plan"
)

var (
	verbose string

	samclkCmd = &cobra.Command{
		Use:   "samclk",
		Short: "Clock tree planner for SAM D5x/E5x devices",
		Long:  "samclk checks YAML clock plans against the limits of the chip they name and generates Go code that builds the planned clock tree.",
	}
)

func init() {
	samclkCmd.PersistentFlags().StringVarP(&verbose, "verbose", "v", "quiet", "verbosity level (=quiet, =info, =warning, =debug)")
	samclkCmd.AddCommand(checkCmd, genCmd, targetsCmd)
}

func main() {
	if err := samclkCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func options() plan.Options {
	opts := plan.Options{Output: os.Stderr}
	switch strings.ToLower(verbose) {
	case "", "quiet":
		opts.Verbosity = plan.Quiet
	case "info":
		opts.Verbosity = plan.Info
	case "warning":
		opts.Verbosity = plan.Warning
	case "debug":
		opts.Verbosity = plan.Debug
	default:
		println("Unknown output verbosity mode. Defaulting to \"quiet\"")
	}
	return opts
}

// load reads and evaluates the plan in path.
func load(path string) (*plan.Tree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := plan.Decode(file)
	if err != nil {
		return nil, err
	}
	return plan.Eval(p, options())
}
