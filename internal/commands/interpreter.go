package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sandeepkv93/tasksh/internal/model"
	"github.com/sandeepkv93/tasksh/internal/views"
)

// DefaultDateLayout is the en-US short date used in listings.
const DefaultDateLayout = "1/2/2006"

const invalidTaskID = `Invalid task ID. Use "list" to see task IDs.`

// TaskStore is the slice of store.Store the interpreter needs.
type TaskStore interface {
	Load(ctx context.Context) []model.Task
	Add(ctx context.Context, text string) model.Task
	Toggle(ctx context.Context, id string) (model.Task, bool)
	Delete(ctx context.Context, id string) bool
	ClearAll(ctx context.Context)
}

type Interpreter struct {
	store      TaskStore
	dateLayout string
	loc        *time.Location
}

type InterpreterOption func(*Interpreter)

func WithDateLayout(layout string) InterpreterOption {
	return func(in *Interpreter) {
		if layout != "" {
			in.dateLayout = layout
		}
	}
}

func WithLocation(loc *time.Location) InterpreterOption {
	return func(in *Interpreter) {
		if loc != nil {
			in.loc = loc
		}
	}
}

func NewInterpreter(s TaskStore, opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{store: s, dateLayout: DefaultDateLayout, loc: time.Local}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run parses and executes one input line. Parse failures become error
// lines; blank input yields an empty result.
func (in *Interpreter) Run(ctx context.Context, line string) (Command, Result) {
	cmd, err := Parse(line)
	if err == nil {
		var res Result
		res, err = Execute(cmd, in.Handlers(ctx))
		if err == nil {
			return cmd, res
		}
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		if ce.Code == ErrCodeEmptyInput {
			return cmd, Result{}
		}
		return cmd, Result{Lines: []Line{Error("%s", ce.Message)}}
	}
	return cmd, Result{Lines: []Line{Error("%s", err.Error())}}
}

func (in *Interpreter) Handlers(ctx context.Context) Handlers {
	return Handlers{
		Help:   in.help,
		Add:    func(arg string) (Result, error) { return in.add(ctx, arg) },
		List:   func(string) (Result, error) { return in.list(ctx) },
		Done:   func(arg string) (Result, error) { return in.done(ctx, arg) },
		Undone: func(arg string) (Result, error) { return in.undone(ctx, arg) },
		Delete: func(arg string) (Result, error) { return in.delete(ctx, arg) },
		Clear:  func(string) (Result, error) { return Result{ClearLog: true}, nil },
		Reset:  func(string) (Result, error) { return in.reset(ctx) },
		Search: func(arg string) (Result, error) { return in.search(ctx, arg) },
	}
}

// FormatTask renders one numbered listing row, e.g. "1. [○] buy milk (2/9/2026)".
func (in *Interpreter) FormatTask(task model.Task, index int) string {
	return fmt.Sprintf("%d. [%s] %s (%s)", index, task.Status(), task.Text, task.FormatDate(in.dateLayout, in.loc))
}

var helpLines = []string{
	"Available commands:",
	"  add <task>     - Add a new task",
	"  list           - Show all tasks",
	"  done <id>      - Mark task as completed",
	"  undone <id>    - Mark task as incomplete",
	"  delete <id>    - Delete a task",
	"  search <term>  - Filter tasks (no term clears)",
	"  clear          - Clear the terminal",
	"  reset          - Delete all tasks",
	"  help           - Show this help",
}

func (in *Interpreter) help(string) (Result, error) {
	lines := make([]Line, 0, len(helpLines))
	for _, l := range helpLines {
		lines = append(lines, Output("%s", l))
	}
	return Result{Lines: lines}, nil
}

func (in *Interpreter) add(ctx context.Context, text string) (Result, error) {
	task := in.store.Add(ctx, text)
	return Result{Lines: []Line{Output("Task added: %s", task.Text)}, Refresh: true}, nil
}

func (in *Interpreter) list(ctx context.Context) (Result, error) {
	tasks := in.store.Load(ctx)
	if len(tasks) == 0 {
		return Result{Lines: []Line{Output(`No tasks found. Use "add <task>" to create one.`)}}, nil
	}
	lines := make([]Line, 0, len(tasks)+1)
	lines = append(lines, Output("Found %d task(s):", len(tasks)))
	for i, t := range tasks {
		lines = append(lines, Output("%s", in.FormatTask(t, i+1)))
	}
	return Result{Lines: lines}, nil
}

// resolve maps a 1-based position in the current listing to its task.
// Positions shift after deletes; callers re-list to see the new numbering.
func (in *Interpreter) resolve(ctx context.Context, arg string) (model.Task, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Task{}, false
	}
	tasks := in.store.Load(ctx)
	if n < 1 || n > len(tasks) {
		return model.Task{}, false
	}
	return tasks[n-1], true
}

func (in *Interpreter) done(ctx context.Context, arg string) (Result, error) {
	task, ok := in.resolve(ctx, arg)
	if !ok {
		return Result{Lines: []Line{Error(invalidTaskID)}}, nil
	}
	// already completed: leave it alone and report the failure
	if task.Completed {
		return Result{Lines: []Line{Error("Failed to mark task as completed.")}}, nil
	}
	updated, ok := in.store.Toggle(ctx, task.ID)
	if !ok || !updated.Completed {
		return Result{Lines: []Line{Error("Failed to mark task as completed.")}}, nil
	}
	return Result{Lines: []Line{Output("Task marked as completed: %s", updated.Text)}, Refresh: true}, nil
}

func (in *Interpreter) undone(ctx context.Context, arg string) (Result, error) {
	task, ok := in.resolve(ctx, arg)
	if !ok {
		return Result{Lines: []Line{Error(invalidTaskID)}}, nil
	}
	if !task.Completed {
		return Result{Lines: []Line{Error("Failed to mark task as incomplete.")}}, nil
	}
	updated, ok := in.store.Toggle(ctx, task.ID)
	if !ok || updated.Completed {
		return Result{Lines: []Line{Error("Failed to mark task as incomplete.")}}, nil
	}
	return Result{Lines: []Line{Output("Task marked as incomplete: %s", updated.Text)}, Refresh: true}, nil
}

func (in *Interpreter) delete(ctx context.Context, arg string) (Result, error) {
	task, ok := in.resolve(ctx, arg)
	if !ok {
		return Result{Lines: []Line{Error(invalidTaskID)}}, nil
	}
	if !in.store.Delete(ctx, task.ID) {
		return Result{Lines: []Line{Error("Failed to delete task.")}}, nil
	}
	return Result{Lines: []Line{Output("Task deleted: %s", task.Text)}, Refresh: true}, nil
}

func (in *Interpreter) reset(ctx context.Context) (Result, error) {
	in.store.ClearAll(ctx)
	return Result{Lines: []Line{Output("All tasks have been deleted.")}, Refresh: true}, nil
}

func (in *Interpreter) search(ctx context.Context, term string) (Result, error) {
	if term == "" {
		return Result{Lines: []Line{Output("Search cleared.")}, Search: &term}, nil
	}
	rows := views.Filter(in.store.Load(ctx), term)
	if len(rows) == 0 {
		return Result{Lines: []Line{Output("No tasks match %q.", term)}, Search: &term}, nil
	}
	lines := make([]Line, 0, len(rows)+1)
	lines = append(lines, Output("Found %d task(s) matching %q:", len(rows), term))
	for _, r := range rows {
		lines = append(lines, Output("%s", in.FormatTask(r.Task, r.Index)))
	}
	return Result{Lines: lines, Search: &term}, nil
}
