// Command regen generates the chip register layer from a YAML register
// description.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"omibyte.io/samclock/cmd/regen/generator"
	"omibyte.io/samclock/cmd/regen/regdef"
)

var (
	input       string
	output      string
	volatilePkg string
)

func init() {
	flag.StringVar(&input, "in", "", "input file")
	flag.StringVar(&output, "out", "", "output file")
	flag.StringVar(&volatilePkg, "volatile", "omibyte.io/samclock/internal/volatile", "import path of the volatile access package")
	flag.Parse()
}

func main() {
	if len(input) == 0 || len(output) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Open the input file
	file, err := os.Open(input)
	if err != nil {
		log.Fatal("file io error: ", err)
	}

	dev, err := regdef.Decode(file)
	if err != nil {
		log.Fatalf("%s: %v", input, err)
	}

	// Close the file
	if err = file.Close(); err != nil {
		log.Fatal("file io error: ", err)
	}

	buf, err := generator.New(dev, filepath.Base(input), volatilePkg).Generate()
	if err != nil {
		// Write the unformatted output so that the problem can be inspected
		os.WriteFile(output, buf, 0640)
		log.Fatal(err)
	}

	if err = os.WriteFile(output, buf, 0640); err != nil {
		log.Fatal("file io error: ", err)
	}
}
