package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger with its configuration
type Logger struct {
	*zap.Logger
	config *Config
}

// consoleSink receives console output. Stdout belongs to the MCP stdio transport,
// so console logs always go to stderr.
var consoleSink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)

// New creates a new logger instance with the given configuration. Options are
// applied to a copy of cfg.
func New(cfg *Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger configuration: %w", err)
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if c.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var writers []zapcore.WriteSyncer
	switch c.Output {
	case "console":
		writers = append(writers, consoleSink)
	case "file":
		writers = append(writers, zapcore.AddSync(getFileWriter(&c.File)))
	case "both":
		writers = append(writers, consoleSink, zapcore.AddSync(getFileWriter(&c.File)))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)

	var zapOpts []zap.Option
	if c.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}
	if c.EnableStacktrace {
		zapOpts = append(zapOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{
		Logger: zap.New(core, zapOpts...),
		config: &c,
	}, nil
}

// getFileWriter creates a lumberjack file writer with rotation
func getFileWriter(cfg *FileConfig) io.Writer {
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}

// With creates a child logger with additional fields
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
		config: l.config,
	}
}

// Named creates a named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.Named(name),
		config: l.config,
	}
}

// Config returns the effective logger configuration
func (l *Logger) Config() *Config {
	return l.config
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop(), config: DefaultConfig()}
}
