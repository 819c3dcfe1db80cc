package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/chameleon/internal/model"
)

// run executes the CLI with colour off and an empty home directory.
func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHAMELEON_DISPLAY_MODE", "")
	t.Setenv("CHAMELEON_SEED", "")
	t.Setenv("CHAMELEON_COLOR", "")
	t.Setenv("CHAMELEON_LOG_FILE", "")

	var out, errOut bytes.Buffer
	code = Run(context.Background(), append([]string{"--color", "never"}, args...), Options{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestClassify_Panel(t *testing.T) {
	code, out, _ := run(t, "", "classify", "I", "am", "so", "angry")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "ANGRY")
	assert.Contains(t, out, "#EF4444")
	assert.Contains(t, out, "tracking-tighter uppercase font-black")
	assert.Contains(t, out, "╭")
}

func TestClassify_JSON(t *testing.T) {
	code, out, _ := run(t, "", "classify", "--json", "--mode", "light", "Beast", "Mode")
	require.Equal(t, 0, code)

	var got struct {
		Input  string            `json:"input"`
		Mode   model.DisplayMode `json:"mode"`
		Result struct {
			Mood   string `json:"mood"`
			UIMode string `json:"ui_mode"`
		} `json:"result"`
		Theme struct {
			PrimaryColor string `json:"primaryColor"`
			IsPowerMode  bool   `json:"isPowerMode"`
		} `json:"theme"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Beast Mode", got.Input)
	assert.Equal(t, model.Light, got.Mode)
	assert.Equal(t, "power", got.Result.Mood)
	assert.Equal(t, "POWER", got.Result.UIMode)
	assert.Equal(t, "#A3FF00", got.Theme.PrimaryColor)
	assert.True(t, got.Theme.IsPowerMode)
}

func TestTheme_LightHappy(t *testing.T) {
	code, out, _ := run(t, "", "theme", "--mode", "light", "--json", "happy")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"primaryColor": "#CA8A04"`)
	assert.Contains(t, out, `"pageBackground": "#FEFCE8"`)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"dance"}},
		{"classify without text", []string{"classify"}},
		{"unknown mood", []string{"theme", "grumpy"}},
		{"bad mode", []string{"theme", "--mode", "sepia", "sad"}},
		{"unknown flag", []string{"hints", "--loud"}},
		{"bad color", []string{"--color", "sometimes", "hints"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, "", tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, "✖")
		})
	}
}

func TestConfigErrorExitsOne(t *testing.T) {
	code, _, errOut := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "hints")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read config")
}

func TestConfig_PrintsEffectiveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("display_mode = \"light\"\n[timing]\nrefresh_ms = 500\n"), 0o644))

	code, out, _ := run(t, "", "--config", path, "config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `display_mode = "light"`)
	assert.Contains(t, out, "refresh_ms = 500")
	assert.Contains(t, out, "thinking_ms = 300")
}

func TestHints(t *testing.T) {
	code, out, _ := run(t, "", "hints")
	require.Equal(t, 0, code)
	for _, want := range []string{"Feel happy", "happy", "Feeling a bit low", "sad", "Beast Mode", "power"} {
		assert.Contains(t, out, want)
	}
}

func TestParseScript(t *testing.T) {
	steps, err := parseScript(strings.NewReader("# warm up\n\nFeel happy\n!toggle\n  Beast Mode  \n"))
	require.NoError(t, err)
	assert.Equal(t, []step{
		{line: 3, text: "Feel happy"},
		{line: 4, toggle: true},
		{line: 5, text: "Beast Mode"},
	}, steps)

	_, err = parseScript(strings.NewReader("!rewind\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestReplay_VirtualTimestamps(t *testing.T) {
	script := "Feel happy\nstill happy\n!toggle\nBeast Mode\n"
	code, out, _ := run(t, script, "replay")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "session "))
	for i, want := range []string{
		"[     0ms] start",
		`[     0ms] submitted      "Feel happy" → happy`,
		"[   300ms] recalibrating  → happy",
		"[  1500ms] committed      happy (dark) #FDE047",
		`[  1500ms] submitted      "still happy" → happy`,
		"[  2300ms] committed      happy (dark) #FDE047",
		"[  2300ms] mode-toggled   happy (light) #CA8A04",
		`[  2300ms] submitted      "Beast Mode" → power`,
		"[  2600ms] recalibrating  → power",
	} {
		assert.True(t, strings.HasPrefix(lines[i+1], want), "line %d: got %q, want prefix %q", i+1, lines[i+1], want)
	}
	assert.Contains(t, lines[10], "committed")
	assert.Contains(t, lines[10], "power (light) #A3FF00")
}

func TestReplay_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("I am so angry\n"), 0o644))

	code, out, _ := run(t, "", "replay", "--mode", "light", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "angry (light) #DC2626")
}

func TestReplay_MissingFile(t *testing.T) {
	code, _, errOut := run(t, "", "replay", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open script")
}

func TestConfig_Write(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CHAMELEON_SEED", "")
	var buf, errBuf bytes.Buffer
	code := Run(context.Background(), []string{"--color", "never", "config", "--write"},
		Options{Stdin: strings.NewReader(""), Stdout: &buf, Stderr: &errBuf})
	require.Equal(t, 0, code, errBuf.String())
	assert.Contains(t, buf.String(), "✔ wrote")

	b, err := os.ReadFile(filepath.Join(home, ".chameleon", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `seed_phrase = "neon green"`)

	code = Run(context.Background(), []string{"--color", "never", "config", "--write"},
		Options{Stdin: strings.NewReader(""), Stdout: &buf, Stderr: &errBuf})
	assert.Equal(t, 1, code)
	assert.Contains(t, errBuf.String(), "already exists")

	code = Run(context.Background(), []string{"--color", "never", "config", "--write", "--force"},
		Options{Stdin: strings.NewReader(""), Stdout: &buf, Stderr: &errBuf})
	assert.Equal(t, 0, code)
}
