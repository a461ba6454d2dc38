package commands

import (
	"fmt"

	"github.com/sandeepkv93/tasksh/internal/model"
)

type Line struct {
	Kind    model.LineKind
	Content string
}

func Output(format string, args ...any) Line {
	return Line{Kind: model.LineOutput, Content: fmt.Sprintf(format, args...)}
}

func Error(format string, args ...any) Line {
	return Line{Kind: model.LineError, Content: fmt.Sprintf(format, args...)}
}

// Result is what a command produced. Refresh asks the list panel to
// re-read the store; Search, when set, replaces the shared search term.
type Result struct {
	Lines    []Line
	ClearLog bool
	Refresh  bool
	Search   *string
}

func (r Result) HasError() bool {
	for _, l := range r.Lines {
		if l.Kind == model.LineError {
			return true
		}
	}
	return false
}

type Handler func(arg string) (Result, error)

type Handlers struct {
	Help   Handler
	Add    Handler
	List   Handler
	Done   Handler
	Undone Handler
	Delete Handler
	Clear  Handler
	Reset  Handler
	Search Handler
}

func (h Handlers) lookup(t Type) (Handler, bool) {
	switch t {
	case TypeHelp:
		return h.Help, true
	case TypeAdd:
		return h.Add, true
	case TypeList:
		return h.List, true
	case TypeDone:
		return h.Done, true
	case TypeUndone:
		return h.Undone, true
	case TypeDelete:
		return h.Delete, true
	case TypeClear:
		return h.Clear, true
	case TypeReset:
		return h.Reset, true
	case TypeSearch:
		return h.Search, true
	default:
		return nil, false
	}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	fn, known := handlers.lookup(cmd.Type)
	if !known {
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
	if fn == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", cmd.Type)}
	}
	return fn(cmd.Arg)
}
