package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"omibyte.io/samclock/plan"
)

var (
	genOpts = struct {
		output   string
		pkg      string
		function string
		typeName string
	}{}

	genCmd = &cobra.Command{
		Use:   "gen <plan.yaml>",
		Short: "Generate the code for a clock plan",
		Long:  "Generate a Go function that builds the clock tree of a plan, and a struct type holding its handles.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := load(args[0])
			if err != nil {
				log.Fatalf("%s: %v", args[0], err)
			}

			buf, err := plan.Generate(tree, plan.GenOptions{
				Package: genOpts.pkg,
				Func:    genOpts.function,
				Type:    genOpts.typeName,
				Source:  filepath.Base(args[0]),
			})
			if err != nil {
				log.Fatal(err)
			}

			if len(genOpts.output) == 0 {
				os.Stdout.Write(buf)
				return
			}
			if err = os.WriteFile(genOpts.output, buf, 0640); err != nil {
				log.Fatal("file io error: ", err)
			}
		},
	}
)

func init() {
	genCmd.Flags().StringVarP(&genOpts.output, "output", "o", "", "output file, standard output if empty")
	genCmd.Flags().StringVarP(&genOpts.pkg, "package", "p", "clocks", "package name of the generated file")
	genCmd.Flags().StringVar(&genOpts.function, "func", "Setup", "name of the generated function")
	genCmd.Flags().StringVar(&genOpts.typeName, "type", "Tree", "name of the generated struct type")
}
