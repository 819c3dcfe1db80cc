package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/session"
	"github.com/idilsaglam/chameleon/internal/ui"
)

const toggleDirective = "!toggle"

// step is one script line: a submission, or a display mode toggle.
type step struct {
	line   int
	text   string
	toggle bool
}

// parseScript reads one step per line. Blank lines and # comments are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.EqualFold(line, toggleDirective):
			steps = append(steps, step{line: n, toggle: true})
		case strings.HasPrefix(line, "!"):
			return nil, fmt.Errorf("line %d: unknown directive %q", n, line)
		default:
			steps = append(steps, step{line: n, text: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func (a *app) replayCmd() *cobra.Command {
	var (
		mode     string
		realtime bool
	)
	cmd := &cobra.Command{
		Use:   "replay [file|-]",
		Short: "Run a script of submissions through a session and print each transition",
		Long: `replay feeds each line of a script to a session as if it were typed and
submitted, waiting for the cycle to finish before the next line. A line of
"!toggle" flips the display mode. Timestamps are virtual unless --realtime
is given. The script is read from stdin when no file (or "-") is named.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.mode(mode)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			steps, err := parseScript(in)
			if err != nil {
				return err
			}

			var wait func(time.Duration)
			if realtime {
				wait = sleeper(cmd.Context())
			}
			return a.replay(cmd.OutOrStdout(), steps, m, wait)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "starting display mode (default from config)")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "wait out the real delays")
	return cmd
}

// replay runs steps on a virtual clock. wait, when set, is called with the
// gap before each timer fires.
func (a *app) replay(w io.Writer, steps []step, mode model.DisplayMode, wait func(time.Duration)) error {
	clock := session.NewVirtualClock()
	opts := []session.Option{
		session.WithSeed(a.cfg.SeedPhrase),
		session.WithDelays(a.cfg.Delays()),
		session.WithLogger(a.log),
		session.WithDisplayMode(mode),
		session.WithObserver(func(c session.Change) { printChange(w, clock.Now(), c) }),
	}
	sess := session.New(clock, opts...)

	st := sess.State()
	fmt.Fprintf(w, "%s %s\n", ui.C(mutedColor, "session"), sess.ID())
	fmt.Fprintf(w, "%s %s  %s\n", stamp(0), ui.C(mutedColor, fmt.Sprintf("%-13s", "start")),
		describe(st))

	for _, s := range steps {
		a.log.Debug("replay step", zap.Int("line", s.line), zap.Bool("toggle", s.toggle))
		if s.toggle {
			sess.ToggleDisplayMode()
			continue
		}
		sess.Submit(s.text)
		clock.Drain(wait)
	}
	return nil
}

func printChange(w io.Writer, at time.Duration, c session.Change) {
	kind := ui.C(mutedColor, fmt.Sprintf("%-13s", c.Kind))
	st := c.State
	switch c.Kind {
	case session.ChangeSubmitted:
		fmt.Fprintf(w, "%s %s  %q → %s\n", stamp(at), kind, c.Text, st.Next.Mood)
	case session.ChangeIgnored:
		fmt.Fprintf(w, "%s %s  %q (busy: %s)\n", stamp(at), kind, c.Text, st.Phase())
	case session.ChangeRecalibrating:
		fmt.Fprintf(w, "%s %s  → %s\n", stamp(at), kind, st.Next.Mood)
	default:
		fmt.Fprintf(w, "%s %s  %s\n", stamp(at), kind, describe(st))
	}
}

// describe summarises the committed mood and its theme.
func describe(st session.State) string {
	t := st.Theme()
	s := fmt.Sprintf("%s (%s) %s", ui.B(t.PrimaryColor, st.Current.Mood.String()), st.Mode, t.PrimaryColor)
	if t.IsPowerMode {
		s += " " + ui.B(t.PrimaryColor, "⚡")
	}
	return s
}

func stamp(d time.Duration) string {
	return ui.C(mutedColor, fmt.Sprintf("[%6dms]", d.Milliseconds()))
}

// sleeper waits in real time, returning early once ctx is done.
func sleeper(ctx context.Context) func(time.Duration) {
	return func(d time.Duration) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
}
