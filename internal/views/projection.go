package views

import (
	"strings"

	"github.com/sandeepkv93/tasksh/internal/model"
)

// Row is a task paired with its 1-based position in the unfiltered list,
// the number numeric commands address it by.
type Row struct {
	Index int
	Task  model.Task
}

type Projection struct {
	Term      string
	Pending   []Row
	Completed []Row
	// counts over the unfiltered list
	Total          int
	PendingTotal   int
	CompletedTotal int
}

func (p Projection) Matched() int {
	return len(p.Pending) + len(p.Completed)
}

// Rows flattens the projection pending first.
func (p Projection) Rows() []Row {
	out := make([]Row, 0, p.Matched())
	out = append(out, p.Pending...)
	return append(out, p.Completed...)
}

// Matches reports whether text contains term, ignoring case. An empty or
// blank term matches everything.
func Matches(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// Filter keeps matching tasks in storage order.
func Filter(tasks []model.Task, term string) []Row {
	out := make([]Row, 0, len(tasks))
	for i, t := range tasks {
		if Matches(t.Text, term) {
			out = append(out, Row{Index: i + 1, Task: t})
		}
	}
	return out
}

func Project(tasks []model.Task, term string) Projection {
	p := Projection{
		Term:      strings.TrimSpace(term),
		Pending:   make([]Row, 0),
		Completed: make([]Row, 0),
		Total:     len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			p.CompletedTotal++
		} else {
			p.PendingTotal++
		}
	}
	for _, row := range Filter(tasks, p.Term) {
		if row.Task.Completed {
			p.Completed = append(p.Completed, row)
		} else {
			p.Pending = append(p.Pending, row)
		}
	}
	return p
}
