package model

import (
	"fmt"
	"strings"
)

// Mood is one of the five classification outcomes.
// The zero value is MoodIntelligent, the fallback category.
type Mood uint8

const (
	MoodIntelligent Mood = iota
	MoodHappy
	MoodSad
	MoodAngry
	MoodPower
)

// NumMoods is the number of mood categories.
const NumMoods = int(MoodPower) + 1

var moodNames = [...]string{
	MoodIntelligent: "intelligent",
	MoodHappy:       "happy",
	MoodSad:         "sad",
	MoodAngry:       "angry",
	MoodPower:       "power",
}

// Moods lists every category.
func Moods() []Mood {
	return []Mood{MoodIntelligent, MoodHappy, MoodSad, MoodAngry, MoodPower}
}

func (m Mood) String() string {
	if int(m) < len(moodNames) {
		return moodNames[m]
	}
	return fmt.Sprintf("mood(%d)", uint8(m))
}

// ParseMood accepts the lowercase names produced by String.
func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moodNames {
		if name == s {
			return Mood(i), nil
		}
	}
	return MoodIntelligent, fmt.Errorf("unknown mood %q (want one of %s)", s, strings.Join(moodNames[:], ", "))
}

func (m Mood) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mood) UnmarshalText(b []byte) error {
	v, err := ParseMood(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Palette is a named colour family.
type Palette string

const (
	PaletteNeonGreen Palette = "neon-green"
	PaletteYellow    Palette = "yellow"
	PaletteLavender  Palette = "lavender"
	PaletteRed       Palette = "red"
)

// Intensity is how much ambient motion a mood asks for.
type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// AmbientCount is how many floating glyphs a background shows at this intensity.
func (i Intensity) AmbientCount() int {
	switch i {
	case IntensityHigh:
		return 12
	case IntensityMedium:
		return 8
	default:
		return 5
	}
}

// MoodResult is the descriptor returned by the classifier.
// Every field except Mood is derived from Mood.
type MoodResult struct {
	Mood               Mood      `json:"mood"`
	PrimaryPalette     Palette   `json:"primaryPalette"`
	EmojiSet           []string  `json:"emojiSet"`
	AnimationIntensity Intensity `json:"animationIntensity"`

	// Power mode only.
	UIMode   string `json:"ui_mode,omitempty"`
	Density  string `json:"density,omitempty"`
	Contrast string `json:"contrast,omitempty"`
	Motion   string `json:"motion,omitempty"`
}

// Ambient returns the glyphs drifting behind the layout, cycling through
// the emoji set. Power mode and empty sets have none.
func (r MoodResult) Ambient() []string {
	if r.Mood == MoodPower || len(r.EmojiSet) == 0 {
		return nil
	}
	n := r.AnimationIntensity.AmbientCount()
	out := make([]string, n)
	for i := range out {
		out[i] = r.EmojiSet[i%len(r.EmojiSet)]
	}
	return out
}

// LoaderSymbols are shown while recalibrating towards this mood.
func (m Mood) LoaderSymbols() []string {
	switch m {
	case MoodHappy:
		return []string{"😄", "✨", "🌟"}
	case MoodSad:
		return []string{"😔", "💧", "🌙"}
	case MoodAngry:
		return []string{"😡", "🔥", "⚠️"}
	default:
		return []string{"🧠", "⚡", "🌐"}
	}
}

// Tiles are the four glyphs on the main panel for this mood.
func (m Mood) Tiles() []string {
	switch m {
	case MoodHappy:
		return []string{"😄", "😊", "🌟", "✨"}
	case MoodSad:
		return []string{"😔", "😞", "🌧️", "💧"}
	case MoodAngry:
		return []string{"😡", "🔥", "⚠️", "💥"}
	default:
		return []string{"🧠", "⚙️", "🌐", "⚡"}
	}
}

// DisplayMode is the user's light/dark toggle.
type DisplayMode string

const (
	Dark  DisplayMode = "dark"
	Light DisplayMode = "light"
)

// Toggle flips dark and light. Anything unrecognised becomes dark.
func (d DisplayMode) Toggle() DisplayMode {
	if d == Dark {
		return Light
	}
	return Dark
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown display mode %q (want dark or light)", s)
}
