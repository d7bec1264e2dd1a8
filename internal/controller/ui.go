// Package controller provides output adapters for displaying lint reports.
package controller

import (
	"os"

	"golang.org/x/term"

	"linterman.dev/pkg/linterman/internal/engine"
	m "linterman.dev/pkg/linterman/internal/model"
)

// Output formats supported by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// UI defines the interface for displaying lint results.
// Implementations can use different output methods (plain text, TUI, etc).
type UI interface {
	DisplayResult(result m.Result) error
	DisplayFixOutcome(outcome m.FixOutcome) error
	DisplayRules(rules []engine.Rule) error
}

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
