// Package theme resolves a mood and display mode into concrete visual tokens.
package theme

import "github.com/idilsaglam/chameleon/internal/model"

// PowerColor is the accent power mode uses in both display modes.
const PowerColor = "#A3FF00"

type colorPair struct{ dark, light string }

var baseColors = map[model.Palette]colorPair{
	model.PaletteYellow:    {dark: "#FDE047", light: "#CA8A04"},
	model.PaletteLavender:  {dark: "#A78BFA", light: "#8B5CF6"},
	model.PaletteRed:       {dark: "#EF4444", light: "#DC2626"},
	model.PaletteNeonGreen: {dark: "#A3FF00", light: "#65A30D"},
}

// row holds everything except the primary colour for one palette,
// indexed [dark, light].
type row struct {
	tint     [2]model.Tint
	page     [2]string
	accent   [2]model.AccentStyle
	radius   int
	typo     model.Typography
	contrast [2]model.Contrast
}

var rows = map[model.Palette]row{
	model.PaletteYellow: {
		tint:     [2]model.Tint{{R: 253, G: 224, B: 71, A: 0.1}, {R: 254, G: 249, B: 195, A: 0.6}},
		page:     [2]string{"#0A0900", "#FEFCE8"},
		accent:   [2]model.AccentStyle{model.AccentGlow, model.AccentShadow},
		radius:   32,
		typo:     model.Typography{Tracking: model.TrackingTight, Uppercase: true, Heavy: true},
		contrast: [2]model.Contrast{model.ContrastMedium, model.ContrastHigh},
	},
	model.PaletteLavender: {
		tint:     [2]model.Tint{{R: 167, G: 139, B: 250, A: 0.03}, {R: 245, G: 243, B: 255, A: 0.5}},
		page:     [2]string{"#020005", "#F5F3FF"},
		accent:   [2]model.AccentStyle{model.AccentSoft, model.AccentSoft},
		radius:   48,
		typo:     model.Typography{Tracking: model.TrackingNormal},
		contrast: [2]model.Contrast{model.ContrastLow, model.ContrastLow},
	},
	model.PaletteRed: {
		tint:     [2]model.Tint{{R: 239, G: 68, B: 68, A: 0.08}, {R: 254, G: 242, B: 242, A: 0.4}},
		page:     [2]string{"#050000", "#FEF2F2"},
		accent:   [2]model.AccentStyle{model.AccentNeon, model.AccentOutline},
		radius:   8,
		typo:     model.Typography{Tracking: model.TrackingTighter, Uppercase: true, Heavy: true},
		contrast: [2]model.Contrast{model.ContrastHigh, model.ContrastHigh},
	},
}

// defaultRow covers neon-green and any palette not in rows.
var defaultRow = row{
	tint:     [2]model.Tint{{R: 163, G: 255, B: 0, A: 0.05}, {R: 249, G: 250, B: 251, A: 0.5}},
	page:     [2]string{"#020202", "#F9FAFB"},
	accent:   [2]model.AccentStyle{model.AccentGlow, model.AccentShadow},
	radius:   24,
	typo:     model.Typography{Tracking: model.TrackingTighter, Uppercase: true, Heavy: true},
	contrast: [2]model.Contrast{model.ContrastHigh, model.ContrastHigh},
}

// Power is the fixed configuration for power mode.
func Power() model.ThemeConfig {
	return model.ThemeConfig{
		PrimaryColor:   PowerColor,
		PageBackground: "#050505",
		BackgroundTint: model.Tint{R: 163, G: 255, B: 0, A: 0.02},
		AccentStyle:    model.AccentSolid,
		CornerRadius:   4,
		Typography:     model.Typography{Mono: true, Tracking: model.TrackingTight},
		ContrastLevel:  model.ContrastVeryHigh,
		IsPowerMode:    true,
	}
}

// Resolve returns the theme for a mood result in the given display mode.
// Power mode ignores the display mode. An unknown palette, or an unknown
// display mode, falls back to neon-green and dark respectively.
func Resolve(r model.MoodResult, mode model.DisplayMode) model.ThemeConfig {
	if r.Mood == model.MoodPower {
		return Power()
	}

	i := 0
	if mode == model.Light {
		i = 1
	}

	colors, ok := baseColors[r.PrimaryPalette]
	if !ok {
		colors = baseColors[model.PaletteNeonGreen]
	}
	primary := colors.dark
	if i == 1 {
		primary = colors.light
	}

	rw, ok := rows[r.PrimaryPalette]
	if !ok {
		rw = defaultRow
	}
	return model.ThemeConfig{
		PrimaryColor:   primary,
		PageBackground: rw.page[i],
		BackgroundTint: rw.tint[i],
		AccentStyle:    rw.accent[i],
		CornerRadius:   rw.radius,
		Typography:     rw.typo,
		ContrastLevel:  rw.contrast[i],
	}
}
