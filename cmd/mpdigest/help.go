package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mpdigest [flags]")
	fmt.Fprintln(w, "       mpdigest <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, read date.txt and print the digest HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  api        Serve POST /convert over HTTP")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>        JSON input file (default date.txt)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --layout <name>       auto, simple or rich (default: from input shape)")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  [ {title, summary, url}, ... ]                 simple layout")
	fmt.Fprintln(w, "  { articles: [...], overview: \"<p>...</p>\" }    rich layout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mpdigest help <command>' for details on a specific command.")
}

// printServeUsage prints usage for the api command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mpdigest api [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve POST /convert. The body is {\"articles\": [...], \"overview\": \"...\"}")
	fmt.Fprintln(w, "and the response is {\"html\": \"...\"}.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default 0.0.0.0:8000)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --layout <name>       Default layout: auto, simple or rich")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging on stderr")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "api", "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mpdigest version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the version and exit.")
	default:
		fmt.Fprintf(env.Stdout, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stdout)
	}
}
