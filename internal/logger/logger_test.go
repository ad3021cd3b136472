package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "json", "smartplan")
	require.NoError(t, err)
	defer log.Sync()
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	log, err := NewLogger("verbose", "console", "")
	require.NoError(t, err)
	defer log.Sync()
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerWithDefaults(t *testing.T) {
	log, err := NewLoggerWithDefaults()
	require.NoError(t, err)
	defer log.Sync()
	assert.NotNil(t, log)
}
