package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"nuna/internal/config"
)

// parseLogLevel は設定のログレベル文字列を slog のレベルに変換します。
func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// newLogger は開発環境なら tint、それ以外は JSON のロガーを作ります。
// log.file が設定されていれば、JSON をローテーション付きのファイルにも書く。
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	logLevel := new(slog.LevelVar)
	level, known := parseLogLevel(cfg.Log.Level)
	logLevel.Set(level)

	var handler slog.Handler
	if cfg.IsDev() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	var closer io.Closer = io.NopCloser(nil)
	if cfg.Log.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    100, // MB
			MaxBackups: 30,
			MaxAge:     90, // days
			Compress:   true,
		}
		closer = rotator
		fileHandler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		handler = fanoutHandler{handler, fileHandler}
	}

	logger := slog.New(handler)
	if !known {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}
	return logger, closer
}

// fanoutHandler は同じレコードを複数のハンドラに渡します。
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithGroup(name)
	}
	return next
}
