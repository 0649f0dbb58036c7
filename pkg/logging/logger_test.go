package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevel(t *testing.T) {
	logger, err := New("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		logger, err := New(level)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "level %q", level)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel), "level %q", level)
	}
}
