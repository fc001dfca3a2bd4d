package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelerPerName(t *testing.T) {
	l := GetLeveler()
	l.SetLevel("test-a", zapcore.DebugLevel)
	l.SetLevel("test-b", zapcore.WarnLevel)

	assert.Equal(t, zapcore.DebugLevel, l.GetLevel("test-a"))
	assert.Equal(t, zapcore.WarnLevel, l.GetLevel("test-b"))
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	log := New("test-c")
	GetLeveler().SetLevel("test-c", zapcore.ErrorLevel)

	assert.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestSetDefaultLevel(t *testing.T) {
	defer func() { require.NoError(t, SetDefaultLevel("info")) }()

	require.NoError(t, SetDefaultLevel("debug"))
	log := New("test-d")
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, SetDefaultLevel("loud"))
}
