package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// errorTee sends every record to main and copies Error and above to errs.
// A failed copy is reported on main as a warning.
type errorTee struct {
	main slog.Handler
	errs slog.Handler
}

func (h *errorTee) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.main.Enabled(ctx, lvl) || (lvl >= slog.LevelError && h.errs.Enabled(ctx, lvl))
}

func (h *errorTee) Handle(ctx context.Context, r slog.Record) error {
	if h.main.Enabled(ctx, r.Level) {
		if err := h.main.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level < slog.LevelError || !h.errs.Enabled(ctx, r.Level) {
		return nil
	}
	if err := h.errs.Handle(ctx, r.Clone()); err != nil {
		warn := slog.NewRecord(time.Now(), slog.LevelWarn, "Cannot write error log", r.PC)
		warn.AddAttrs(slog.String("error", err.Error()), slog.String("dropped", r.Message))
		return h.main.Handle(ctx, warn)
	}
	return nil
}

func (h *errorTee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorTee{main: h.main.WithAttrs(attrs), errs: h.errs.WithAttrs(attrs)}
}

func (h *errorTee) WithGroup(name string) slog.Handler {
	return &errorTee{main: h.main.WithGroup(name), errs: h.errs.WithGroup(name)}
}

// newLogger builds the application logger on out. When errLog is not nil,
// errors are also written there as text.
func newLogger(env string, out, errLog io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == envProd {
		opts.Level = slog.LevelInfo
	}

	var core slog.Handler
	if env == envDev {
		core = slog.NewJSONHandler(out, opts)
	} else {
		core = slog.NewTextHandler(out, opts)
	}

	if errLog == nil {
		return slog.New(core)
	}
	return slog.New(&errorTee{
		main: core,
		errs: slog.NewTextHandler(errLog, &slog.HandlerOptions{Level: slog.LevelError}),
	})
}

// setupLogger logs to stdout and, unless errorLogPath is empty, appends
// errors to that file.
func setupLogger(env, errorLogPath string) *slog.Logger {
	if errorLogPath == "" {
		return newLogger(env, os.Stdout, nil)
	}

	f, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log := newLogger(env, os.Stdout, nil)
		log.Warn("Cannot open error log file", slog.String("path", errorLogPath), slog.String("error", err.Error()))
		return log
	}

	return newLogger(env, os.Stdout, f)
}
