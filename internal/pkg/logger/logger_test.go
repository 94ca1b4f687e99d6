package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{Logger: zap.New(core), config: DefaultConfig()}, logs
}

// captureConsole redirects console output into a buffer for the test's duration
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := consoleSink
	consoleSink = zapcore.AddSync(&buf)
	t.Cleanup(func() { consoleSink = prev })
	return &buf
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "default config", config: DefaultConfig()},
		{name: "nil config", config: nil},
		{
			name:   "console output",
			config: &Config{Level: "info", Format: "console", Output: "console"},
		},
		{
			name: "file output",
			config: &Config{
				Level: "debug", Format: "json", Output: "file",
				File: FileConfig{Filename: filepath.Join(dir, "test.log"), MaxSize: 10, MaxAge: 7, MaxBackups: 3},
			},
		},
		{
			name: "both output",
			config: &Config{
				Level: "warn", Format: "json", Output: "both",
				File: FileConfig{Filename: filepath.Join(dir, "both.log"), MaxSize: 10, MaxAge: 7, MaxBackups: 3},
			},
		},
		{name: "invalid level", config: &Config{Level: "invalid", Format: "json", Output: "console"}, wantErr: true},
		{name: "invalid format", config: &Config{Level: "info", Format: "xml", Output: "console"}, wantErr: true},
		{name: "invalid output", config: &Config{Level: "info", Format: "json", Output: "stdout"}, wantErr: true},
		{
			name:    "file output without filename",
			config:  &Config{Level: "info", Format: "json", Output: "file"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureConsole(t)
			logger, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.Info("hello")
			_ = logger.Sync()
		})
	}
}

func TestNew_ConsoleWritesToConsoleSink(t *testing.T) {
	buf := captureConsole(t)

	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	logger.Info("search completed", zap.String("engine", "Baidu"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search completed", entry["msg"])
	assert.Equal(t, "Baidu", entry["engine"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_FileOutput(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, err := New(DefaultConfig(), WithOutput("file"), WithFilename(filename))
	require.NoError(t, err)

	logger.Warn("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_Options(t *testing.T) {
	captureConsole(t)
	base := DefaultConfig()

	logger, err := New(base, WithLevel("debug"), WithFormat("console"), WithLevel(""))
	require.NoError(t, err)

	assert.Equal(t, "debug", logger.Config().Level)
	assert.Equal(t, "console", logger.Config().Format)
	assert.Equal(t, "info", base.Level, "options must not mutate the caller's config")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "valid config", config: DefaultConfig()},
		{name: "upper case level", config: &Config{Level: "WARN", Format: "json", Output: "console"}},
		{name: "invalid level", config: &Config{Level: "verbose", Format: "json", Output: "console"}, wantErr: true},
		{
			name: "bad maxsize",
			config: &Config{Level: "info", Format: "json", Output: "file",
				File: FileConfig{Filename: "x.log", MaxSize: 0, MaxAge: 1}},
			wantErr: true,
		},
		{
			name: "bad maxage",
			config: &Config{Level: "info", Format: "json", Output: "both",
				File: FileConfig{Filename: "x.log", MaxSize: 1, MaxAge: 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogger_WithAndNamed(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.With(zap.String("key", "value")).Named("search").Info("test message")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "search", entry.LoggerName)
	assert.Equal(t, "value", entry.ContextMap()["key"])
}

func TestContext(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	ctx := context.Background()
	assert.Same(t, logger, logger.WithContext(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithRequestID(ctx, "test-request-id")
	assert.Equal(t, "test-request-id", GetRequestID(ctx))

	logger.WithContext(ctx).Info("tagged")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "test-request-id", logs.All()[0].ContextMap()["request_id"])
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("discarded")
	assert.NotNil(t, logger.Config())
}
