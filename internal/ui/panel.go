package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// visibleWidth is the terminal cell width of s, ignoring colour codes.
func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// ProgressBar renders a bar of width cells for pct percent, followed by
// the percentage.
func ProgressBar(pct, width int, fill, empty string) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 5 {
		width = 5
	}
	filled := pct * width / 100
	return fmt.Sprintf("%s%s %3d%%", strings.Repeat(fill, filled), strings.Repeat(empty, width-filled), pct)
}

// Panel draws lines inside a frame made from border's corners and edges.
func Panel(w io.Writer, border lipgloss.Border, lines []string) {
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, border.TopLeft+strings.Repeat(border.Top, maxw+2)+border.TopRight)
	for _, ln := range lines {
		fmt.Fprintln(w, border.Left+" "+pad(ln)+" "+border.Right)
	}
	fmt.Fprintln(w, border.BottomLeft+strings.Repeat(border.Bottom, maxw+2)+border.BottomRight)
}

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
