package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_QuietWithoutFileIsNop(t *testing.T) {
	l, err := New(Options{Quiet: true, Verbose: true})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chameleon.log")
	l, err := New(Options{File: path, Quiet: true, Verbose: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l.Debug("mood committed", zap.String("to", "happy"))
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"mood committed"`)
	assert.Contains(t, string(b), `"to":"happy"`)
}

func TestNew_InfoByDefault(t *testing.T) {
	l, err := New(Options{File: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}
