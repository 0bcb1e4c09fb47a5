// Package logger builds the zap logger used by the command-line tools.
package logger

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity level of the log.
type Level string

const (
	// DebugLevel logs per-file decode summaries.
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"

	messageKey = "message"
)

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

func (level Level) zapLevel() zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options holds configuration options for the logger.
type Options struct {
	level       Level
	outputPaths []string
	writer      io.Writer
}

// WithLoggingLevel sets the minimum level that will be logged. Defaults to info.
func WithLoggingLevel(level Level) Options {
	return Options{level: level}
}

// WithOutputPaths sets the log sinks. The special paths "stdout" and "stderr"
// are interpreted as os.Stdout and os.Stderr. Defaults to stderr, which keeps
// stdout free for decoded rows.
func WithOutputPaths(paths ...string) Options {
	return Options{outputPaths: paths}
}

// WithWriter sends logs to w instead of the output paths.
func WithWriter(w io.Writer) Options {
	return Options{writer: w}
}

// New creates a JSON logger with the given options applied in order.
func New(opts ...Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	var writer io.Writer
	for _, opt := range opts {
		if opt.level != "" {
			cfg.Level = zap.NewAtomicLevelAt(opt.level.zapLevel())
		}
		if opt.outputPaths != nil {
			cfg.OutputPaths = opt.outputPaths
		}
		if opt.writer != nil {
			writer = opt.writer
		}
	}

	// change default message key `msg` to `message`
	cfg.EncoderConfig.MessageKey = messageKey
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if writer != nil {
		core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg.EncoderConfig), zapcore.AddSync(writer), cfg.Level)
		return zap.New(core), nil
	}

	return cfg.Build()
}
