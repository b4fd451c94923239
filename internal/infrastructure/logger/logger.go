package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/LavaJover/shvark-price-collector/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const TimeLayout = "2006-01-02 15:04:05"

// EncoderConfig renders entries as "<time> - <message>", followed by any
// structured fields. Level and caller are left out of the line.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
}

// New builds the process logger. The returned func flushes and closes the
// underlying file and must be called on shutdown.
func New(cfg config.LogConfig) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	encoder := zapcore.NewConsoleEncoder(EncoderConfig())
	cores := make([]zapcore.Core, 0, 2)
	closeSink := func() error { return nil }

	if cfg.LogOutput != "" {
		sink, closer, err := openSink(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeSink = closer.Close
		cores = append(cores, zapcore.NewCore(encoder, sink, level))
	}
	if cfg.Stdout || len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.Lock(os.Stdout), level))
	}

	log := zap.New(zapcore.NewTee(cores...))
	cleanup := func() error {
		_ = log.Sync()
		return closeSink()
	}
	return log, cleanup, nil
}

// openSink returns an append-only file, or a rotating one when a size limit
// is configured.
func openSink(cfg config.LogConfig) (zapcore.WriteSyncer, io.Closer, error) {
	if cfg.MaxSizeMB > 0 {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogOutput,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		return zapcore.AddSync(lj), lj, nil
	}

	f, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return zapcore.Lock(f), f, nil
}
