// Package main provides the fakefetch command-line tool for displaying host
// information next to a themed ASCII art logo.
//
// Usage:
//
//	fakefetch [-d theme]
//	fakefetch themes
//
// Unknown theme names fall back to the "default" theme.
package main

import (
	"context"
	"fmt"
	"os"

	"fakefetch/logging"
	"fakefetch/sysinfo"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd := newRootCmd(sysinfo.NewProvider(), sysinfo.CurrentIdentity())
	err := cmd.ExecuteContext(context.Background())
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
