package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/chameleon/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Mood
	}{
		{name: "empty", input: "", want: model.MoodIntelligent},
		{name: "whitespace", input: "   ", want: model.MoodIntelligent},
		{name: "seed phrase", input: SeedPhrase, want: model.MoodIntelligent},
		{name: "unrecognised", input: "what is the weather", want: model.MoodIntelligent},
		{name: "happy sentence", input: "I am so happy today", want: model.MoodHappy},
		{name: "power sentence", input: "Enable beast mode now", want: model.MoodPower},
		{name: "power is case insensitive", input: "SHOW ALL DATA please", want: model.MoodPower},
		{name: "power beats happy", input: "great, show me the q3 analysis", want: model.MoodPower},
		{name: "power beats angry", input: "I'm furious, advanced view now", want: model.MoodPower},
		{name: "happy beats sad", input: "happy but tired", want: model.MoodHappy},
		{name: "sad beats angry", input: "sad and mad", want: model.MoodSad},
		{name: "angry", input: "I am FRUSTRATED", want: model.MoodAngry},
		{name: "substring match", input: "slow download", want: model.MoodSad},
		{name: "unicode upper case", input: "JOY", want: model.MoodHappy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input).Mood)
		})
	}
}

func TestClassify_EveryPowerKeywordDominates(t *testing.T) {
	for _, pk := range Keywords(model.MoodPower) {
		for _, other := range []model.Mood{model.MoodHappy, model.MoodSad, model.MoodAngry} {
			for _, k := range Keywords(other) {
				got := Classify(k + " and " + pk)
				assert.Equal(t, model.MoodPower, got.Mood, "%q + %q", k, pk)
			}
		}
	}
}

func TestClassify_KeywordPrecedence(t *testing.T) {
	order := []model.Mood{model.MoodHappy, model.MoodSad, model.MoodAngry}
	for i, m := range order {
		for _, k := range Keywords(m) {
			if shadowed(k, order[:i]) {
				continue
			}
			assert.Equal(t, m, Match(k), "keyword %q", k)
			for _, later := range order[i+1:] {
				for _, lk := range Keywords(later) {
					assert.Equal(t, m, Match(lk+" "+k), "%q before %q", k, lk)
				}
			}
		}
	}
}

// shadowed reports whether k contains a keyword of an earlier rule.
func shadowed(k string, earlier []model.Mood) bool {
	for _, m := range earlier {
		for _, e := range Keywords(m) {
			if strings.Contains(k, e) {
				return true
			}
		}
	}
	return false
}

func TestClassify_UnhappyMatchesHappyFirst(t *testing.T) {
	assert.Equal(t, model.MoodHappy, Match("unhappy"))
}

func TestClassify_Scenarios(t *testing.T) {
	happy := Classify("I am so happy today")
	assert.Equal(t, model.MoodHappy, happy.Mood)
	assert.Equal(t, model.PaletteYellow, happy.PrimaryPalette)
	assert.NotEmpty(t, happy.EmojiSet)
	assert.Equal(t, model.IntensityMedium, happy.AnimationIntensity)

	power := Classify("Enable beast mode now")
	assert.Equal(t, model.MoodPower, power.Mood)
	assert.Empty(t, power.EmojiSet)
	assert.Equal(t, model.IntensityNone, power.AnimationIntensity)
	assert.Equal(t, "POWER", power.UIMode)
}

func TestResult_DerivedFieldsArePure(t *testing.T) {
	inputs := map[model.Mood][]string{
		model.MoodHappy:       {"joy", "feeling great", "so EXCITED"},
		model.MoodSad:         {"blue", "down bad", "tired"},
		model.MoodAngry:       {"mad", "annoyed", "furious!"},
		model.MoodPower:       {"power mode", "data trends"},
		model.MoodIntelligent: {"", "hello"},
	}
	for m, texts := range inputs {
		want := Result(m)
		for _, text := range texts {
			assert.Equal(t, want, Classify(text), "input %q", text)
		}
	}
}

func TestResult_ReturnsFreshSlices(t *testing.T) {
	a := Result(model.MoodHappy)
	a.EmojiSet[0] = "x"
	b := Result(model.MoodHappy)
	assert.Equal(t, "🥰", b.EmojiSet[0])
}

func TestHints(t *testing.T) {
	want := []model.Mood{model.MoodHappy, model.MoodSad, model.MoodAngry, model.MoodPower, model.MoodIntelligent}
	require.Len(t, Hints, len(want))
	for i, h := range Hints {
		assert.Equal(t, want[i], Match(h), "hint %q", h)
	}
}

func TestKeywords_FallbackHasNone(t *testing.T) {
	assert.Nil(t, Keywords(model.MoodIntelligent))
	assert.Len(t, Keywords(model.MoodPower), 6)
}
