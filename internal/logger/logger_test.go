package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{
			name:  "debug level",
			level: zapcore.DebugLevel,
		},
		{
			name:  "error level",
			level: zapcore.ErrorLevel,
		},
		{
			name:  "nil level falls back to global",
			level: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotNil(t, New(tt.level))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{
			name:     "debug",
			input:    "debug",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "info",
			input:    "info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "warn",
			input:    "warn",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "error",
			input:    "error",
			expected: zapcore.ErrorLevel,
			valid:    true,
		},
		{
			name:     "fatal",
			input:    "fatal",
			expected: zapcore.FatalLevel,
			valid:    true,
		},
		{
			name:     "uppercase accepted",
			input:    "DEBUG",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "surrounding spaces trimmed",
			input:    "  warn  ",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "unknown level defaults to info",
			input:    "verbose",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
		{
			name:     "empty string defaults to info",
			input:    "",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestGlobalLoggerRoundTrip tests swapping and restoring the global logger.
// Not parallel: it mutates global state.
func TestGlobalLoggerRoundTrip(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	replacement := New(zapcore.DebugLevel)
	SetLogger(replacement)

	assert.Equal(t, replacement, Logger())
}

// TestGlobalLevelRoundTrip tests changing and restoring the global level.
// Not parallel: it mutates global state.
func TestGlobalLevelRoundTrip(t *testing.T) {
	original := Level()
	defer SetLevel(original)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestContextLoggingFunctions tests that every context-aware logging helper
// runs without panicking. Fatal variants are excluded since they exit.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	Debug(ctx, "debug message")
	Debugf(ctx, "debug message: %s", "formatted")
	DebugKV(ctx, "debug message", "key", "value")

	Info(ctx, "info message")
	Infof(ctx, "info message: %s", "formatted")
	InfoKV(ctx, "info message", "key", "value")

	Warn(ctx, "warn message")
	Warnf(ctx, "warn message: %s", "formatted")
	WarnKV(ctx, "warn message", "key", "value")

	Error(ctx, "error message")
	Errorf(ctx, "error message: %s", "formatted")
	ErrorKV(ctx, "error message", "key", "value")
}

// TestConcurrentLogging tests concurrent use of the shared logger.
// Not parallel: other tests in this package swap the global logger.
func TestConcurrentLogging(_ *testing.T) {
	ctx := context.Background()

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			Info(ctx, "concurrent message")
		}()
	}

	wg.Wait()
}
