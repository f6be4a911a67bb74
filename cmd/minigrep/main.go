// Package main provides the entry point for the minigrep CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/minigrep/cmd/minigrep/cmd"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.ReportError(os.Stderr, err)
		os.Exit(mgerrors.ExitCode(err))
	}
}
