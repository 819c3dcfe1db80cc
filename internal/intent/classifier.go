// Package intent turns free text into a mood descriptor by keyword matching.
package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idilsaglam/chameleon/internal/model"
)

// SeedPhrase is classified to produce a session's first mood.
const SeedPhrase = "neon green"

// Hints are the quick suggestions offered next to the input.
var Hints = []string{
	"Feel happy",
	"Feeling a bit low",
	"I am so angry",
	"Beast Mode",
	"Back to intelligent",
}

type rule struct {
	mood     model.Mood
	keywords []string
	re       *regexp.Regexp
}

// Rules are tried in order; the first match wins.
var rules = []rule{
	newRule(model.MoodPower, "beast mode", "show all data", "data trends", "q3 analysis", "advanced view", "power mode"),
	newRule(model.MoodHappy, "happy", "joy", "excited", "positive", "wonderful", "great"),
	newRule(model.MoodSad, "sad", "down", "low", "tired", "unhappy", "blue"),
	newRule(model.MoodAngry, "angry", "mad", "frustrated", "annoyed", "furious"),
}

func newRule(m model.Mood, keywords ...string) rule {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return rule{mood: m, keywords: keywords, re: regexp.MustCompile(strings.Join(quoted, "|"))}
}

// Keywords returns the patterns that select m, in match order.
// The fallback mood has none.
func Keywords(m model.Mood) []string {
	for _, r := range rules {
		if r.mood == m {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// Classify maps text to a MoodResult. Matching is case-insensitive and by
// substring, so "download" counts as "down". It never fails: text that
// matches nothing, including "", yields the intelligent result.
func Classify(text string) model.MoodResult {
	return Result(Match(text))
}

// Match returns only the mood category for text.
func Match(text string) model.Mood {
	q := cases.Lower(language.Und).String(text)
	for _, r := range rules {
		if r.re.MatchString(q) {
			return r.mood
		}
	}
	return model.MoodIntelligent
}

// Result builds the canned descriptor for a category. Each call returns
// fresh slices, so callers may keep or modify them.
func Result(m model.Mood) model.MoodResult {
	switch m {
	case model.MoodPower:
		return model.MoodResult{
			Mood:               model.MoodPower,
			PrimaryPalette:     model.PaletteNeonGreen,
			EmojiSet:           []string{},
			AnimationIntensity: model.IntensityNone,
			UIMode:             "POWER",
			Density:            "high",
			Contrast:           "very_high",
			Motion:             "snappy",
		}
	case model.MoodHappy:
		return model.MoodResult{
			Mood:               model.MoodHappy,
			PrimaryPalette:     model.PaletteYellow,
			EmojiSet:           []string{"🥰", "😇", "😊", "💖", "✨", "☀️"},
			AnimationIntensity: model.IntensityMedium,
		}
	case model.MoodSad:
		return model.MoodResult{
			Mood:               model.MoodSad,
			PrimaryPalette:     model.PaletteLavender,
			EmojiSet:           []string{"☹️", "😔", "💔", "🥺", "💧"},
			AnimationIntensity: model.IntensityLow,
		}
	case model.MoodAngry:
		return model.MoodResult{
			Mood:               model.MoodAngry,
			PrimaryPalette:     model.PaletteRed,
			EmojiSet:           []string{"😡", "🔥", "😤", "🤬", "💢"},
			AnimationIntensity: model.IntensityHigh,
		}
	default:
		return model.MoodResult{
			Mood:               model.MoodIntelligent,
			PrimaryPalette:     model.PaletteNeonGreen,
			EmojiSet:           []string{},
			AnimationIntensity: model.IntensityNone,
		}
	}
}
