package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	layout  string
	verbose bool
}

// batchFlags holds flags for the default batch command.
type batchFlags struct {
	common commonFlags
	input  string
}

// serveFlags holds flags for the api command.
type serveFlags struct {
	common commonFlags
	addr   string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.layout, "layout", "", "layout: auto, simple, rich")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
}

// parseBatchFlags parses batch flags. Parse errors and usage go to stderr.
func parseBatchFlags(args []string, stderr io.Writer) (*batchFlags, []string, error) {
	fs := flag.NewFlagSet("mpdigest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &batchFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "JSON input file (default date.txt)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses api flags. Parse errors and usage go to stderr.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &serveFlags{}

	fs.StringVar(&f.addr, "addr", "", "listen address (default 0.0.0.0:8000)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printServeUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
