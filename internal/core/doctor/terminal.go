package doctor

import (
	"context"
	"os"

	"golang.org/x/term"
)

// Package-level variables to allow test overrides.
var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	getenvFunc     = os.Getenv
)

// TerminalCheck reports whether the terminal can run the interactive view.
type TerminalCheck struct{}

// NewTerminalCheck creates a new terminal check.
func NewTerminalCheck() *TerminalCheck {
	return &TerminalCheck{}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if isTerminalFunc() {
		result.Items = append(result.Items, CheckItem{Label: "stdout", Status: StatusPass, Detail: "interactive"})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "stdout",
			Status: StatusWarn,
			Detail: "not a terminal; use 'dossier show' for non-interactive output",
		})
	}

	switch t := getenvFunc("TERM"); t {
	case "", "dumb":
		result.Items = append(result.Items, CheckItem{
			Label:  "TERM",
			Status: StatusWarn,
			Detail: "unset or dumb; styling is disabled",
		})
	default:
		result.Items = append(result.Items, CheckItem{Label: "TERM", Status: StatusPass, Detail: t})
	}

	switch ct := getenvFunc("COLORTERM"); ct {
	case "truecolor", "24bit":
		result.Items = append(result.Items, CheckItem{Label: "colors", Status: StatusPass, Detail: ct})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "colors",
			Status: StatusWarn,
			Detail: "no truecolor support reported; themes are approximated",
		})
	}

	return result
}
