// Package main is the entry point for the appdirs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/appdirs/cmd/appdirs/commands"
	"github.com/thoreinstein/appdirs/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
