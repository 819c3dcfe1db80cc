package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"

	failColor = "#EF4444"
	okColor   = "#A3FF00"
)

var (
	forceColor   bool
	disableColor bool

	output = termenv.NewOutput(os.Stdout)
)

// SetColorForcing overrides terminal detection for C and for lipgloss
// rendering. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	lipgloss.SetColorProfile(profile())
}

func profile() termenv.Profile {
	switch {
	case disableColor:
		return termenv.Ascii
	case forceColor:
		return termenv.TrueColor
	}
	return output.EnvColorProfile()
}

// C paints s with a hex colour when the output supports it.
func C(hex, s string) string {
	p := profile()
	if p == termenv.Ascii {
		return s
	}
	return p.String(s).Foreground(p.Color(hex)).String()
}

// B is C in bold.
func B(hex, s string) string {
	p := profile()
	if p == termenv.Ascii {
		return s
	}
	return p.String(s).Foreground(p.Color(hex)).Bold().String()
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(okColor, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(failColor, symCross+" "+msg)) }
