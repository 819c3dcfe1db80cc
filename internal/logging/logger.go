// Package logging builds the zap loggers used by chameleon.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// File, when set, receives the log instead of stderr.
	File string
	// Quiet discards everything unless File is set. The dashboard owns the
	// terminal, so it runs quiet.
	Quiet bool
}

// New returns a JSON production logger configured by opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Quiet && opts.File == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if opts.File != "" {
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
