package plan

import (
	"fmt"
	"io"
	"os"
)

type Verbosity int

const (
	Quiet Verbosity = iota
	Info
	Warning
	Debug
)

type Options struct {
	Verbosity Verbosity
	Output    io.Writer
}

func (o Options) println(verbosity Verbosity, args ...any) {
	if o.Verbosity >= verbosity {
		fmt.Fprintln(o.writer(), args...)
	}
}

func (o Options) printf(verbosity Verbosity, format string, args ...any) {
	if o.Verbosity >= verbosity {
		fmt.Fprintf(o.writer(), format, args...)
	}
}

func (o Options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}
