package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/sandeepkv93/tasksh/internal/commands"
	"github.com/sandeepkv93/tasksh/internal/config"
	"github.com/sandeepkv93/tasksh/internal/log"
	"github.com/sandeepkv93/tasksh/internal/shell"
	"github.com/sandeepkv93/tasksh/internal/storage"
	"github.com/sandeepkv93/tasksh/internal/store"
)

// app is one wired store plus the session talking to it.
type app struct {
	store   *store.Store
	session *shell.Session
	logger  *log.Logger
	closers []func() error
}

func newApp(ctx context.Context, cfg config.RuntimeConfig, memory bool, logger *log.Logger, noBanner bool) (*app, error) {
	a := &app{logger: logger}

	var slot storage.Slot
	if memory {
		slot = storage.NewMemorySlot()
	} else {
		sqlite, err := storage.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open task database: %w", err)
		}
		a.closers = append(a.closers, sqlite.Close)
		slot = sqlite
	}
	a.store = store.New(slot, cfg.StorageKey)
	logger.Debugf("storage %s key=%s memory=%v", cfg.DBPath, a.store.Key(), memory)

	interp := commands.NewInterpreter(a.store, commands.WithDateLayout(cfg.DateLayout))
	a.session = shell.NewSession(interp, shell.Options{
		Scrollback: cfg.Scrollback,
		NoBanner:   noBanner,
		Logger:     logger,
	})
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Errorf("close: %v", err)
		}
	}
}

// openLogFile returns the diagnostic sink for TUI mode. No file means
// diagnostics are dropped so they never draw over the screen.
func openLogFile(cfg config.RuntimeConfig) (*log.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return log.Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, cfg.Verbose), f.Close, nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printLines writes result lines in order, one per line.
func printLines(out io.Writer, lines []commands.Line) {
	for _, line := range lines {
		fmt.Fprintln(out, line.Content)
	}
}
