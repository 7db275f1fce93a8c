// ABOUTME: Zap logger construction for the mood CLI.
// ABOUTME: Writes to stderr or a rotating file and tags each run with an id.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/lumberjack.v2"
)

// Options controls where and how much the logger writes.
type Options struct {
	// Level is one of debug, info, warn, error. Defaults to warn.
	Level string
	// File, when set, receives logs through a rotating writer instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Stderr overrides the console writer; used by tests.
	Stderr io.Writer
}

// New builds a logger from opts. The returned closer flushes and releases the file.
func New(opts Options) (*zap.Logger, func() error) {
	level := ParseLevel(opts.Level)

	var sink zapcore.WriteSyncer
	var closer io.Closer
	var encoder zapcore.Encoder

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 30),
			LocalTime:  true,
		}
		sink = zapcore.AddSync(lj)
		closer = lj
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		var w io.Writer = os.Stderr
		if opts.Stderr != nil {
			w = opts.Stderr
		}
		sink = zapcore.AddSync(w)
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level)).
		With(zap.String("run", uuid.NewString()))

	return logger, func() error {
		_ = logger.Sync()
		if closer != nil {
			return closer.Close()
		}
		return nil
	}
}

// ParseLevel maps a level name to a zap level, defaulting to warn.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
