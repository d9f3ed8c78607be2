// Package lintmain implements the rislint executable logic.
package lintmain

import (
	"fmt"
	"log"
	"os"
)

// Config parametrizes the linter executable.
type Config struct {
	Version string
	Name    string
}

var config *Config

// Run dispatches to the sub-command named by the first argument.
// It does not return on errors: unknown or missing sub-commands
// terminate the process.
func Run(cfg Config) {
	config = &cfg
	log.SetFlags(0)

	if len(os.Args) < 2 {
		terminate("not enough arguments, expected sub-command name")
	}

	sub := os.Args[1]
	// Remove the sub-command argument so that every sub-command main
	// sees only its own flags and arguments.
	os.Args = append(os.Args[:1], os.Args[2:]...)

	cmd := findSubCommand(sub)
	if cmd == nil {
		terminate("unknown sub-command: " + sub)
	}
	cmd.main()
}

// terminate prints the error reason and usage, then exits with a
// non-zero status.
func terminate(reason string) {
	stderrPrintf("error: %s\n\n", reason)
	printUsage()
	os.Exit(1)
}

func printUsage() {
	stderrPrintf("usage: %s <sub-command> [args]\n\n", config.Name)
	stderrPrintf("Supported sub-commands:\n")
	for _, cmd := range subCommands {
		stderrPrintf("\t%s - %s\n", cmd.name, cmd.short)
	}
}

// stderrPrintf writes a formatted message to stderr, treating a write
// failure as unrecoverable.
func stderrPrintf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(fmt.Sprintf("stderr write error: %v", err))
	}
}
