// Package detector picks the table renderer for the current environment.
package detector

import (
	"io"
	"os"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/ui/output"
	"go.trai.ch/zerr"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive table view.
	ModeTUI
	// ModeLinear forces the plain table printer.
	ModeLinear
)

// String returns the flag value naming m.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode converts an --output flag value into an OutputMode.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrUnknownOutputMode, "output", flag)
	}
}

// DetectEnvironment returns the mode suited to w.
// Terminals get the interactive view unless CI is set.
func DetectEnvironment(w io.Writer) OutputMode {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !output.IsTerminal(w) || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies a requested mode to the auto-detected one.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
