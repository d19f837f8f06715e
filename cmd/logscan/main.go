package main

import (
	"fmt"
	"os"
)

// build-time override (e.g. -ldflags "-X main.version=1.2.3")
var version = "dev"

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
