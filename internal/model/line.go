package model

import "time"

type LineKind string

const (
	LineCommand LineKind = "command"
	LineOutput  LineKind = "output"
	LineError   LineKind = "error"
)

func (k LineKind) IsValid() bool {
	switch k {
	case LineCommand, LineOutput, LineError:
		return true
	default:
		return false
	}
}

// Line is one entry of the terminal scrollback.
type Line struct {
	ID      string
	Kind    LineKind
	Content string
	At      time.Time
}
