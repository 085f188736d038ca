package tui

import (
	"os"

	"github.com/aretw0/edmcheck/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Palette
const (
	colorSuccess = "#22c55e"
	colorFailure = "#ef4444"
	colorInfo    = "#38bdf8"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Profile picks the color profile for mode ("auto", "always", "never").
// In auto mode colors are only used when f is a terminal and the environment
// does not disable them (NO_COLOR, CLICOLOR=0).
func Profile(mode string, f *os.File) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	default:
		if !IsTerminal(f) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	}
}

// NewPainter returns a runner.Painter coloring lines by tone.
func NewPainter(p termenv.Profile) runner.Painter {
	if p == termenv.Ascii {
		return nil
	}
	return func(tone runner.Tone, s string) string {
		var color string
		switch tone {
		case runner.ToneSuccess:
			color = colorSuccess
		case runner.ToneFailure:
			color = colorFailure
		default:
			color = colorInfo
		}
		return p.String(s).Foreground(p.Color(color)).String()
	}
}
