// Package shell ties the interpreter, scrollback and recall list into one
// interactive session. Both the TUI and line mode drive a Session.
package shell

import (
	"context"
	"strings"

	"github.com/sandeepkv93/tasksh/internal/commands"
	"github.com/sandeepkv93/tasksh/internal/history"
	"github.com/sandeepkv93/tasksh/internal/log"
	"github.com/sandeepkv93/tasksh/internal/model"
)

var Banner = []string{
	"Daily Task Manager v1.0",
	`Type "help" for available commands`,
	"",
}

type Session struct {
	interp *commands.Interpreter
	Log    *history.Log
	Recall *history.Recall
	search string
	logger *log.Logger
}

type Options struct {
	Scrollback int
	NoBanner   bool
	Logger     *log.Logger
}

func NewSession(interp *commands.Interpreter, opts Options) *Session {
	s := &Session{
		interp: interp,
		Log:    history.NewLog(opts.Scrollback),
		Recall: history.NewRecall(),
		logger: opts.Logger,
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	if !opts.NoBanner {
		for _, line := range Banner {
			s.Log.Append(model.LineOutput, line)
		}
	}
	return s
}

// Submit runs one line. Blank input is ignored and reports false.
func (s *Session) Submit(ctx context.Context, raw string) (commands.Result, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return commands.Result{}, false
	}
	s.Recall.Push(trimmed)
	s.Log.Append(model.LineCommand, "$ "+trimmed)

	cmd, res := s.interp.Run(ctx, trimmed)
	defer func() {
		s.logger.Debugf("command %q verb=%s lines=%d refresh=%v scrollback=%d", trimmed, cmd.Verb, len(res.Lines), res.Refresh, s.Log.Len())
	}()

	if res.ClearLog {
		// the echo goes too
		s.Log.Clear()
	}
	for _, line := range res.Lines {
		s.Log.Append(line.Kind, line.Content)
	}
	if res.Search != nil {
		s.search = *res.Search
	}
	return res, true
}

func (s *Session) Search() string { return s.search }

// SetSearch is the list panel's write path to the shared term.
func (s *Session) SetSearch(term string) { s.search = term }
