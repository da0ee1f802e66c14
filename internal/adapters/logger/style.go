package logger

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Palette used for log levels.
const (
	colorSlate  = "#667085"
	colorRed    = "#D93025"
	colorYellow = "#F59E0B"
)

const (
	iconCross   = "✗"
	iconWarning = "!"
)

// colorProfile honors NO_COLOR and otherwise detects terminal capabilities.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true))
}
