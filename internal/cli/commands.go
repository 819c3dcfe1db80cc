package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/chameleon/internal/config"
	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/theme"
	"github.com/idilsaglam/chameleon/internal/ui"
)

const mutedColor = "#6B7280"

func (a *app) dashboardCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:         "dashboard",
		Short:       "Open the interactive dashboard (default)",
		Args:        usageArgs(cobra.NoArgs),
		Annotations: map[string]string{interactiveKey: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.mode(mode)
			if err != nil {
				return err
			}
			err = ui.Run(ui.Options{
				Seed:          a.cfg.SeedPhrase,
				Mode:          m,
				Delays:        a.cfg.Delays(),
				ShowConsole:   a.cfg.UI.ShowConsole,
				AmbientEmojis: a.cfg.UI.AmbientEmojis,
				Logger:        a.log,
			})
			if err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "start in dark or light mode (default from config)")
	return cmd
}

// report is the --json shape of classify and theme.
type report struct {
	Input  string            `json:"input,omitempty"`
	Mode   model.DisplayMode `json:"mode"`
	Result model.MoodResult  `json:"result"`
	Theme  model.ThemeConfig `json:"theme"`
}

func (a *app) classifyCmd() *cobra.Command {
	var (
		mode   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "classify <text...>",
		Short: "Classify text into a mood and show its theme",
		Example: `  chameleon classify "I am so angry"
  chameleon classify --json --mode light feeling a bit low`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.mode(mode)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return usagef("classify: empty text")
			}
			r := intent.Classify(text)
			a.log.Debug("classified", zap.String("text", text), zap.Stringer("mood", r.Mood))
			rep := report{Input: text, Mode: m, Result: r, Theme: theme.Resolve(r, m)}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "dark or light (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *app) themeCmd() *cobra.Command {
	var (
		mode   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:       "theme <mood>",
		Short:     "Resolve the theme for a mood",
		ValidArgs: moodNames(),
		Args:      usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.mode(mode)
			if err != nil {
				return err
			}
			mood, err := model.ParseMood(args[0])
			if err != nil {
				return usageError{err}
			}
			r := intent.Result(mood)
			rep := report{Mode: m, Result: r, Theme: theme.Resolve(r, m)}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "dark or light (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *app) hintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hints",
		Short: "List the quick hints and what they classify as",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			width := 0
			for _, h := range intent.Hints {
				width = max(width, len(h))
			}
			mode := a.cfg.Mode()
			lines := make([]string, 0, len(intent.Hints))
			for _, h := range intent.Hints {
				r := intent.Classify(h)
				t := theme.Resolve(r, mode)
				lines = append(lines, fmt.Sprintf("%-*s  %s %s", width, h,
					ui.C(mutedColor, "→"), ui.B(t.PrimaryColor, r.Mood.String())))
			}
			ui.Panel(cmd.OutOrStdout(), lipgloss.RoundedBorder(), lines)
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	var write, force bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `config prints the effective configuration: defaults, then the config file,
then CHAMELEON_* environment overrides. With --write it saves that
configuration to the config file instead.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !write {
				return a.cfg.Encode(cmd.OutOrStdout())
			}
			path := a.cfgPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := writeConfig(a.cfg, path, force); err != nil {
				return err
			}
			a.log.Info("config written", zap.String("path", path))
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration to the config file")
	cmd.Flags().BoolVar(&force, "force", false, "with --write, overwrite an existing file")
	return cmd
}

func writeConfig(cfg *config.Config, path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("open config: %w", err)
	}
	if err := cfg.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	return nil
}

// -------------- rendering helpers --------------

func moodNames() []string {
	out := make([]string, 0, model.NumMoods)
	for _, m := range model.Moods() {
		out = append(out, m.String())
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printReport(w io.Writer, rep report) {
	r, t := rep.Result, rep.Theme
	accent := t.PrimaryColor
	kv := func(k, v string) string {
		return fmt.Sprintf("%s %s", ui.C(mutedColor, fmt.Sprintf("%-12s", k)), v)
	}

	var lines []string
	if rep.Input != "" {
		lines = append(lines, ui.C(mutedColor, "“")+ui.Truncate(rep.Input, 60)+ui.C(mutedColor, "”"), "")
	}
	lines = append(lines,
		kv("mood", ui.B(accent, strings.ToUpper(r.Mood.String()))),
		kv("palette", string(r.PrimaryPalette)),
		kv("intensity", string(r.AnimationIntensity)),
		kv("emojis", strings.Join(r.EmojiSet, " ")),
	)
	if r.UIMode != "" {
		lines = append(lines, kv("ui mode", fmt.Sprintf("%s %s/%s/%s", r.UIMode, r.Density, r.Contrast, r.Motion)))
	}
	lines = append(lines,
		"",
		kv("display", string(rep.Mode)),
		kv("primary", ui.C(accent, "■")+" "+t.PrimaryColor),
		kv("page", t.PageBackground),
		kv("tint", t.BackgroundTint.String()),
		kv("accent", string(t.AccentStyle)),
		kv("radius", fmt.Sprintf("%d", t.CornerRadius)),
		kv("typography", t.Typography.Classes()),
		kv("contrast", string(t.ContrastLevel)),
	)
	if t.IsPowerMode {
		lines = append(lines, "", ui.B(accent, "⚡ POWER MODE"))
	}
	ui.Panel(w, lipgloss.RoundedBorder(), lines)
}
