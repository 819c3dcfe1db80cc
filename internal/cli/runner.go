package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/chameleon/internal/config"
	"github.com/idilsaglam/chameleon/internal/logging"
	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/ui"
)

// Options wire the command tree to its streams.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// usageError marks a bad invocation, which exits 2 instead of 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// usageArgs turns positional argument failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt = opt.withDefaults()
	a := &app{opt: opt, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(opt.Stdin)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.ExecuteContext(ctx)
	_ = a.log.Sync()
	if err == nil {
		return 0
	}

	ui.Fail(opt.Stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(opt.Stderr, ui.C("#6B7280", "Run `chameleon --help` for usage."))
		return 2
	}
	return 1
}

// app carries what the root flags and config resolve to.
type app struct {
	opt Options

	cfgPath string
	verbose bool
	color   string

	cfg *config.Config
	log *zap.Logger
}

const interactiveKey = "interactive"

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chameleon",
		Short: "An adaptive terminal dashboard that reshapes itself to your mood",
		Long: `chameleon reads a line of free text, classifies it into one of five moods
and re-themes a terminal dashboard to match. Run it without a subcommand to
open the dashboard.`,
		Args:              usageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Annotations:       map[string]string{interactiveKey: "true"},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ~/.chameleon/config.toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.color, "color", "", "colour output: auto, always or never")

	dash := a.dashboardCmd()
	root.RunE = dash.RunE
	root.Flags().AddFlagSet(dash.Flags())

	root.AddCommand(
		dash,
		a.classifyCmd(),
		a.themeCmd(),
		a.replayCmd(),
		a.hintsCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads config, applies colour policy and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.color != "" {
		switch a.color {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.UI.Color = a.color
		default:
			return usagef("--color: unknown policy %q (want auto, always or never)", a.color)
		}
	}
	a.cfg = cfg
	ui.SetColorForcing(cfg.UI.Color == config.ColorAlways, cfg.UI.Color == config.ColorNever)

	log, err := logging.New(logging.Options{
		Verbose: a.verbose,
		File:    cfg.LogFile,
		Quiet:   cmd.Annotations[interactiveKey] == "true",
	})
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("command", cmd.Name()))
	a.log.Debug("config loaded",
		zap.String("path", a.cfgPath),
		zap.String("display_mode", cfg.DisplayMode),
		zap.String("color", cfg.UI.Color))
	return nil
}

// mode resolves a --mode flag, falling back to the configured mode.
func (a *app) mode(flag string) (model.DisplayMode, error) {
	if flag == "" {
		return a.cfg.Mode(), nil
	}
	m, err := model.ParseDisplayMode(flag)
	if err != nil {
		return m, usageError{fmt.Errorf("--mode: %w", err)}
	}
	return m, nil
}
