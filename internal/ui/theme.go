package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/idilsaglam/chameleon/internal/model"
)

// Styles turns a resolved ThemeConfig into terminal styles.
// Every renderer pulls from one of these rather than from the raw tokens.
type Styles struct {
	Theme  model.ThemeConfig
	Border lipgloss.Border

	Page   lipgloss.Style
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Accent lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Badge  lipgloss.Style
	Help   lipgloss.Style

	// Meter runes for filled and empty cells.
	Fill, Empty string
}

const (
	inkDark  = "#F5F5F5"
	inkLight = "#111111"
	dimInk   = "#6B7280"
)

// NewStyles builds styles for t.
func NewStyles(t model.ThemeConfig) Styles {
	page := parseHex(t.PageBackground, colorful.Color{})
	ink := inkDark
	if isLight(page) {
		ink = inkLight
	}
	surface := blend(page, t.BackgroundTint)

	s := Styles{
		Theme:  t,
		Border: borderFor(t.CornerRadius),
	}
	s.Fill, s.Empty = meterRunes(t.AccentStyle)

	primary := lipgloss.Color(t.PrimaryColor)
	s.Page = lipgloss.NewStyle().
		Background(lipgloss.Color(page.Hex())).
		Foreground(lipgloss.Color(ink))
	s.Text = lipgloss.NewStyle().Foreground(lipgloss.Color(ink))
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(dimInk))
	s.Accent = lipgloss.NewStyle().Foreground(primary)
	s.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(ink)).Bold(t.Typography.Heavy)
	s.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color(page.Hex())).Background(primary).Bold(true).Padding(0, 1)
	s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color(dimInk))

	s.Panel = lipgloss.NewStyle().
		Border(s.Border).
		BorderForeground(primary).
		Background(lipgloss.Color(surface.Hex())).
		Padding(0, 1)
	if t.CornerRadius >= 32 {
		s.Panel = s.Panel.Padding(1, 2)
	}

	switch t.ContrastLevel {
	case model.ContrastLow:
		s.Text = s.Text.Faint(true)
		s.Panel = s.Panel.BorderForeground(lipgloss.Color(dimInk))
	case model.ContrastHigh:
		s.Accent = s.Accent.Bold(true)
	case model.ContrastVeryHigh:
		s.Accent = s.Accent.Bold(true)
		s.Text = s.Text.Bold(true)
	}
	if t.AccentStyle == model.AccentOutline {
		s.Badge = lipgloss.NewStyle().Foreground(primary).Border(lipgloss.NormalBorder(), false, true).Padding(0, 1)
	}
	return s
}

// Dimmed returns a copy with every colour washed out, for content shown
// behind the recalibration loader.
func (s Styles) Dimmed() Styles {
	grey := lipgloss.Color(dimInk)
	d := s
	d.Title = s.Title.Foreground(grey).Faint(true)
	d.Accent = s.Accent.Foreground(grey).Faint(true)
	d.Text = s.Text.Foreground(grey).Faint(true)
	d.Muted = s.Muted.Faint(true)
	d.Badge = s.Badge.Background(grey)
	d.Panel = s.Panel.BorderForeground(grey)
	return d
}

// Heading applies the theme's typography to text.
func (s Styles) Heading(text string) string {
	if s.Theme.Typography.Uppercase {
		text = strings.ToUpper(text)
	}
	return s.Title.Render(text)
}

// Label is a small accent caption.
func (s Styles) Label(text string) string {
	return s.Accent.Render(strings.ToUpper(text))
}

// Meter is a labelled progress bar in the accent colour.
func (s Styles) Meter(label string, pct, width int) string {
	barWidth := width - visibleWidth(label) - 6
	return s.Muted.Render(label) + " " + s.Accent.Render(ProgressBar(pct, barWidth, s.Fill, s.Empty))
}

// Box frames a titled block at the given outer width.
func (s Styles) Box(title, body string, width int) string {
	inner := width - s.Panel.GetHorizontalBorderSize()
	if inner < 10 {
		inner = 10
	}
	content := body
	if title != "" {
		content = s.Label(title) + "\n" + body
	}
	return s.Panel.Width(inner).Render(content)
}

func borderFor(radius int) lipgloss.Border {
	switch {
	case radius >= 24:
		return lipgloss.RoundedBorder()
	case radius >= 8:
		return lipgloss.NormalBorder()
	default:
		return lipgloss.ThickBorder()
	}
}

func meterRunes(a model.AccentStyle) (fill, empty string) {
	switch a {
	case model.AccentGlow, model.AccentShadow:
		return "▰", "▱"
	case model.AccentSoft:
		return "●", "○"
	case model.AccentOutline:
		return "▮", "▯"
	default:
		return "█", "░"
	}
}

func parseHex(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// blend lays tint over base at the tint's alpha.
func blend(base colorful.Color, tint model.Tint) colorful.Color {
	over := colorful.Color{R: float64(tint.R) / 255, G: float64(tint.G) / 255, B: float64(tint.B) / 255}
	return base.BlendRgb(over, tint.A).Clamped()
}

func isLight(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l > 0.6
}
