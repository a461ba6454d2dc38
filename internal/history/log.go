// Package history keeps the terminal scrollback and the recall list of
// submitted commands. Neither is persisted.
package history

import (
	"strconv"
	"time"

	"github.com/sandeepkv93/tasksh/internal/model"
)

// Log is the append-only scrollback, newest last. A positive limit keeps
// only the most recent lines.
type Log struct {
	lines  []model.Line
	nextID int
	limit  int
	now    func() time.Time
}

func NewLog(limit int) *Log {
	if limit < 0 {
		limit = 0
	}
	return &Log{limit: limit, now: time.Now}
}

func (l *Log) Append(kind model.LineKind, content string) model.Line {
	if !kind.IsValid() {
		kind = model.LineOutput
	}
	l.nextID++
	line := model.Line{
		ID:      strconv.Itoa(l.nextID),
		Kind:    kind,
		Content: content,
		At:      l.now().UTC(),
	}
	l.lines = append(l.lines, line)
	if l.limit > 0 && len(l.lines) > l.limit {
		l.lines = append([]model.Line(nil), l.lines[len(l.lines)-l.limit:]...)
	}
	return line
}

// Lines returns a copy of the scrollback.
func (l *Log) Lines() []model.Line {
	out := make([]model.Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Log) Len() int { return len(l.lines) }

// Clear empties the scrollback. Line ids keep counting so they stay unique
// for the session.
func (l *Log) Clear() {
	l.lines = nil
}
