package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Setup(false, "logmerge", "test"))
	require.NotNil(t, Logger)
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Setup(true, "logmerge", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
