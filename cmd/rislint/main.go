package main

import (
	"github.com/deepnoodle-ai/rislint/linter/lintmain"

	// Register the built-in checkers.
	_ "github.com/deepnoodle-ai/rislint/checkers"
)

// Version contains linter version; it can be overwritten during the build
// with -ldflags -X flag.
var Version = "v0.1.0"

func main() {
	lintmain.Run(lintmain.Config{
		Version: Version,
		Name:    "rislint",
	})
}
