package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksh/internal/config"
	"github.com/sandeepkv93/tasksh/internal/log"
	"github.com/sandeepkv93/tasksh/internal/shell"
	"github.com/sandeepkv93/tasksh/internal/update"
)

func runTUI(ctx context.Context, cfg config.RuntimeConfig, memory bool) error {
	logger, closeLog, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = log.WithLogger(ctx, logger)

	a, err := newApp(ctx, cfg, memory, logger, false)
	if err != nil {
		return err
	}
	defer a.Close()

	m := update.NewModel(ctx, a.session, a.store, update.Options{Tips: update.DefaultTips})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// maxLineBytes bounds one command line in line mode.
const maxLineBytes = 4 << 20

// runLineMode reads one command per line until EOF.
func runLineMode(ctx context.Context, cfg config.RuntimeConfig, memory bool, in io.Reader, out, errOut io.Writer) error {
	logger := log.New(errOut, cfg.Verbose)
	ctx = log.WithLogger(ctx, logger)

	interactive := isTerminal(in)
	a, err := newApp(ctx, cfg, memory, logger, !interactive)
	if err != nil {
		return err
	}
	defer a.Close()

	if interactive {
		for _, line := range shell.Banner {
			fmt.Fprintln(out, line)
		}
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		if interactive {
			fmt.Fprint(out, "$ ")
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		res, ok := a.session.Submit(ctx, scanner.Text())
		if !ok {
			continue
		}
		printLines(out, res.Lines)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
