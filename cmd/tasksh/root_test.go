package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetContext(context.Background())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLineModeRunsCommands(t *testing.T) {
	out, _, err := runRoot(t, "add buy milk\n\nlist\ndone 1\nbogus\n", "--memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Task added: buy milk",
		"Found 1 task(s):",
		"1. [○] buy milk (",
		"Task marked as completed: buy milk",
		`Unknown command: bogus. Type "help" for available commands.`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Daily Task Manager v1.0") {
		t.Fatalf("expected no banner when piped, got:\n%s", out)
	}
}

func TestLineModeAcceptsLongLines(t *testing.T) {
	text := strings.Repeat("x", 200*1024)
	out, _, err := runRoot(t, "add "+text+"\nlist\n", "--memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Task added: "+text) || !strings.Contains(out, "Found 1 task(s):") {
		t.Fatalf("expected long line to be handled, got %d bytes of output", len(out))
	}
}

func TestExecPersistsAcrossRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")
	if _, _, err := runRoot(t, "", "--db", db, "exec", "add", "water", "plants"); err != nil {
		t.Fatalf("exec add: %v", err)
	}
	out, _, err := runRoot(t, "", "--db", db, "exec", "list")
	if err != nil {
		t.Fatalf("exec list: %v", err)
	}
	if !strings.Contains(out, "Found 1 task(s):") || !strings.Contains(out, "water plants") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestExecFailsOnErrorLine(t *testing.T) {
	out, _, err := runRoot(t, "", "--memory", "exec", "done", "9")
	if !errors.Is(err, errCommandFailed) {
		t.Fatalf("expected errCommandFailed, got %v", err)
	}
	if !strings.Contains(out, `Invalid task ID. Use "list" to see task IDs.`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestExecKeepsDashArgsAsText(t *testing.T) {
	out, _, err := runRoot(t, "", "--memory", "exec", "add", "-v", "loud")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Task added: -v loud") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEnvStorageKey(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")
	t.Setenv("TASKSH_STORAGE_KEY", "other")
	if _, _, err := runRoot(t, "", "--db", db, "exec", "add", "a"); err != nil {
		t.Fatalf("exec add: %v", err)
	}
	t.Setenv("TASKSH_STORAGE_KEY", "cmd-tasks")
	out, _, err := runRoot(t, "", "--db", db, "exec", "list")
	if err != nil {
		t.Fatalf("exec list: %v", err)
	}
	if !strings.Contains(out, "No tasks found.") {
		t.Fatalf("expected separate key to be empty, got:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runRoot(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "tasksh dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
