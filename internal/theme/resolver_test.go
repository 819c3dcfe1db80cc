package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
)

var modes = []model.DisplayMode{model.Dark, model.Light}

func TestResolve_IsPure(t *testing.T) {
	for _, m := range model.Moods() {
		for _, mode := range modes {
			r := intent.Result(m)
			first := Resolve(r, mode)
			second := Resolve(intent.Result(m), mode)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Resolve(%s, %s) not stable (-first +second):\n%s", m, mode, diff)
			}
		}
	}
}

func TestResolve_PowerIgnoresDisplayMode(t *testing.T) {
	power := intent.Classify("Enable beast mode now")
	dark := Resolve(power, model.Dark)
	light := Resolve(power, model.Light)
	if diff := cmp.Diff(dark, light); diff != "" {
		t.Errorf("power theme depends on display mode (-dark +light):\n%s", diff)
	}
	assert.Equal(t, PowerColor, light.PrimaryColor)
	assert.True(t, light.IsPowerMode)
	assert.Equal(t, model.ContrastVeryHigh, light.ContrastLevel)
	assert.Equal(t, 4, light.CornerRadius)
	assert.Equal(t, "font-mono tracking-tight", light.Typography.Classes())
}

func TestResolve_NonPowerDependsOnDisplayMode(t *testing.T) {
	for _, m := range model.Moods() {
		if m == model.MoodPower {
			continue
		}
		r := intent.Result(m)
		dark, light := Resolve(r, model.Dark), Resolve(r, model.Light)
		assert.NotEqual(t, dark.PrimaryColor, light.PrimaryColor, "mood %s", m)
		assert.False(t, dark.IsPowerMode)
		assert.False(t, light.IsPowerMode)
	}
}

func TestResolve_Table(t *testing.T) {
	tests := []struct {
		mood     model.Mood
		mode     model.DisplayMode
		primary  string
		page     string
		tint     string
		accent   model.AccentStyle
		radius   int
		classes  string
		contrast model.Contrast
	}{
		{model.MoodHappy, model.Dark, "#FDE047", "#0A0900", "rgba(253, 224, 71, 0.1)", model.AccentGlow, 32, "tracking-tight uppercase font-black", model.ContrastMedium},
		{model.MoodHappy, model.Light, "#CA8A04", "#FEFCE8", "rgba(254, 249, 195, 0.6)", model.AccentShadow, 32, "tracking-tight uppercase font-black", model.ContrastHigh},
		{model.MoodSad, model.Dark, "#A78BFA", "#020005", "rgba(167, 139, 250, 0.03)", model.AccentSoft, 48, "tracking-normal font-medium", model.ContrastLow},
		{model.MoodSad, model.Light, "#8B5CF6", "#F5F3FF", "rgba(245, 243, 255, 0.5)", model.AccentSoft, 48, "tracking-normal font-medium", model.ContrastLow},
		{model.MoodAngry, model.Dark, "#EF4444", "#050000", "rgba(239, 68, 68, 0.08)", model.AccentNeon, 8, "tracking-tighter uppercase font-black", model.ContrastHigh},
		{model.MoodAngry, model.Light, "#DC2626", "#FEF2F2", "rgba(254, 242, 242, 0.4)", model.AccentOutline, 8, "tracking-tighter uppercase font-black", model.ContrastHigh},
		{model.MoodIntelligent, model.Dark, "#A3FF00", "#020202", "rgba(163, 255, 0, 0.05)", model.AccentGlow, 24, "tracking-tighter uppercase font-black", model.ContrastHigh},
		{model.MoodIntelligent, model.Light, "#65A30D", "#F9FAFB", "rgba(249, 250, 251, 0.5)", model.AccentShadow, 24, "tracking-tighter uppercase font-black", model.ContrastHigh},
	}
	for _, tt := range tests {
		t.Run(tt.mood.String()+"/"+string(tt.mode), func(t *testing.T) {
			got := Resolve(intent.Result(tt.mood), tt.mode)
			assert.Equal(t, tt.primary, got.PrimaryColor)
			assert.Equal(t, tt.page, got.PageBackground)
			assert.Equal(t, tt.tint, got.BackgroundTint.String())
			assert.Equal(t, tt.accent, got.AccentStyle)
			assert.Equal(t, tt.radius, got.CornerRadius)
			assert.Equal(t, tt.classes, got.Typography.Classes())
			assert.Equal(t, tt.contrast, got.ContrastLevel)
		})
	}
}

func TestResolve_UnknownPaletteFallsBackToNeonGreen(t *testing.T) {
	r := model.MoodResult{Mood: model.MoodHappy, PrimaryPalette: model.Palette("teal")}
	neon := intent.Result(model.MoodIntelligent)
	for _, mode := range modes {
		if diff := cmp.Diff(Resolve(neon, mode), Resolve(r, mode)); diff != "" {
			t.Errorf("unknown palette in %s mode (-neon +teal):\n%s", mode, diff)
		}
	}
}
