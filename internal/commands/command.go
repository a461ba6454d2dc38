package commands

import (
	"fmt"
	"strings"
	"unicode"
)

type Type string

const (
	TypeHelp   Type = "help"
	TypeAdd    Type = "add"
	TypeList   Type = "list"
	TypeDone   Type = "done"
	TypeUndone Type = "undone"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
	TypeReset  Type = "reset"
	TypeSearch Type = "search"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

// CommandError carries the exact text shown to the user in Message.
type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type Command struct {
	Type Type
	Verb string
	Arg  string
	Raw  string
}

var usage = map[Type]string{
	TypeAdd:    "Usage: add <task description>",
	TypeDone:   "Usage: done <task_id>",
	TypeUndone: "Usage: undone <task_id>",
	TypeDelete: "Usage: delete <task_id>",
}

// Parse splits a line into a lowercased verb and the trimmed remainder.
// The remainder keeps its case and inner spacing.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest := raw, ""
	if i := strings.IndexFunc(raw, unicode.IsSpace); i >= 0 {
		head, rest = raw[:i], raw[i:]
	}
	verb := strings.ToLower(head)
	arg := strings.TrimSpace(rest)
	cmd := Command{Type: Type(verb), Verb: verb, Arg: arg, Raw: raw}

	switch cmd.Type {
	case TypeAdd, TypeDone, TypeUndone, TypeDelete:
		if arg == "" {
			return cmd, &CommandError{Code: ErrCodeInvalidArgument, Message: usage[cmd.Type]}
		}
		return cmd, nil
	case TypeHelp, TypeList, TypeClear, TypeReset, TypeSearch:
		return cmd, nil
	default:
		return cmd, &CommandError{
			Code:    ErrCodeUnknownCommand,
			Message: fmt.Sprintf("Unknown command: %s. Type \"help\" for available commands.", verb),
		}
	}
}
