package model

import (
	"fmt"
	"strconv"
	"strings"
)

// AccentStyle is how the primary colour is applied to surfaces.
type AccentStyle string

const (
	AccentSolid   AccentStyle = "solid"
	AccentGlow    AccentStyle = "glow"
	AccentShadow  AccentStyle = "shadow"
	AccentSoft    AccentStyle = "soft"
	AccentNeon    AccentStyle = "neon"
	AccentOutline AccentStyle = "outline"
)

// Contrast is the contrast level a theme asks for.
type Contrast string

const (
	ContrastLow      Contrast = "low"
	ContrastMedium   Contrast = "medium"
	ContrastHigh     Contrast = "high"
	ContrastVeryHigh Contrast = "very-high"
)

// Tint is a translucent background wash.
type Tint struct {
	R, G, B uint8
	A       float64
}

func (t Tint) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", t.R, t.G, t.B, strconv.FormatFloat(t.A, 'f', -1, 64))
}

func (t Tint) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Tracking is letter spacing.
type Tracking string

const (
	TrackingTighter Tracking = "tighter"
	TrackingTight   Tracking = "tight"
	TrackingNormal  Tracking = "normal"
)

// Typography describes the type treatment of headings.
type Typography struct {
	Mono      bool     `json:"mono"`
	Tracking  Tracking `json:"tracking"`
	Uppercase bool     `json:"uppercase"`
	Heavy     bool     `json:"heavy"`
}

// Classes renders the typography as utility class tokens,
// e.g. "tracking-tight uppercase font-black".
func (t Typography) Classes() string {
	var parts []string
	if t.Mono {
		parts = append(parts, "font-mono")
	}
	parts = append(parts, "tracking-"+string(t.Tracking))
	if t.Uppercase {
		parts = append(parts, "uppercase")
	}
	switch {
	case t.Heavy:
		parts = append(parts, "font-black")
	case !t.Mono:
		parts = append(parts, "font-medium")
	}
	return strings.Join(parts, " ")
}

// ThemeConfig is the fully resolved visual configuration for a mood and
// display mode. It carries no animation state.
type ThemeConfig struct {
	PrimaryColor   string      `json:"primaryColor"`
	PageBackground string      `json:"pageBackground"`
	BackgroundTint Tint        `json:"backgroundTint"`
	AccentStyle    AccentStyle `json:"accentStyle"`
	CornerRadius   int         `json:"cornerRadius"`
	Typography     Typography  `json:"typography"`
	ContrastLevel  Contrast    `json:"contrastLevel"`
	IsPowerMode    bool        `json:"isPowerMode"`
}
