package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	File    string
	Level   string
	Format  string
	Console bool
}

// Open builds the process-wide logger. Records are appended to opts.File and,
// when opts.Console is set, mirrored to stderr. The returned close func must
// be called once on shutdown; it flushes buffered records and closes the file.
func Open(opts Options) (*zap.Logger, func() error, error) {
	if opts.File == "" {
		return nil, nil, errors.New("log file is required")
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	encoder, err := newEncoder(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	// zap.Open appends and wraps the file in a locked WriteSyncer.
	sink, closeFile, err := zap.Open(opts.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(encoder, sink, level)
	if opts.Console {
		core = zapcore.NewTee(core, zapcore.NewCore(encoder.Clone(), zapcore.Lock(os.Stderr), level))
	}
	logger := zap.New(core)

	closeFn := func() error {
		err := logger.Sync()
		closeFile()
		return err
	}
	return logger, closeFn, nil
}

// EncoderConfig names the fields timestamp, level and message and prints
// warnings as WARNING.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		NameKey:        "logger",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    LevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func LevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(LevelName(l))
}

func LevelName(l zapcore.Level) string {
	if l == zapcore.WarnLevel {
		return "WARNING"
	}
	return l.CapitalString()
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", "console":
		cfg := EncoderConfig()
		cfg.ConsoleSeparator = " - "
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		return zapcore.NewJSONEncoder(EncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}
