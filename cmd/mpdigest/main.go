package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// Anything that is not a known command runs the batch conversion, so the
// bare "mpdigest" invocation reads date.txt.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "api", "serve":
			return runServe(args[1:], env)
		case "version", "--version":
			fmt.Fprintf(env.Stdout, "mpdigest %s\n", Version)
			return ExitSuccess
		case "help", "-h", "--help":
			runHelp(args[1:], env)
			return ExitSuccess
		}
	}
	return runBatch(args, env)
}
