package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bamgstudio/portfolio/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	logger := logging.FromContext(ctx)
	logger.Info().Str("project", "01-proxy").Msg("test message")

	assert.True(t, testLogger.Contains("01-proxy"))
	assert.True(t, testLogger.Contains("test message"))
}

func TestFromContextFallback(t *testing.T) {
	t.Run("nil context", func(t *testing.T) {
		logger := logging.FromContext(nil) //nolint:staticcheck // intentional nil check
		assert.NotNil(t, logger)
	})

	t.Run("context without logger", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.NotNil(t, logger)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("ctx alias", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		assert.Equal(t, testLogger.Logger, logging.Ctx(ctx))
	})
}

func TestNewLoggerFromConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *logging.Config
		level zerolog.Level
	}{
		{"nil config defaults to info", nil, zerolog.InfoLevel},
		{"debug level", &logging.Config{Level: "debug", Format: "json", Output: "discard"}, zerolog.DebugLevel},
		{"warn level", &logging.Config{Level: "warn", Format: "json", Output: "discard"}, zerolog.WarnLevel},
		{"invalid level falls back to info", &logging.Config{Level: "bogus", Format: "json", Output: "discard"}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewLoggerFromConfig(tt.cfg)
			assert.Equal(t, tt.level, logger.GetLevel())
		})
	}
}

func TestTestLoggerCapture(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Msg("first")
	testLogger.Debug().Msg("second")

	assert.Len(t, testLogger.Lines(), 2)
	assert.True(t, testLogger.Contains("first"))
	assert.True(t, testLogger.Contains("second"))
}
