package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupSlot(t *testing.T) *SQLiteSlot {
	t.Helper()
	slot, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "tasksh-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestSQLiteSlotGetMissing(t *testing.T) {
	slot := setupSlot(t)
	v, ok, err := slot.Get(context.Background(), "cmd-tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("expected missing key, got %q ok=%v", v, ok)
	}
}

func TestSQLiteSlotPutReplacesValue(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()
	first := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	slot.now = func() time.Time { return first }

	if err := slot.Put(ctx, "cmd-tasks", `[{"id":"1"}]`); err != nil {
		t.Fatalf("first put: %v", err)
	}
	second := first.Add(time.Minute)
	slot.now = func() time.Time { return second }
	if err := slot.Put(ctx, "cmd-tasks", `[]`); err != nil {
		t.Fatalf("second put: %v", err)
	}

	v, ok, err := slot.Get(ctx, "cmd-tasks")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "[]" {
		t.Fatalf("expected wholesale replace, got %q", v)
	}
}

func TestSQLiteSlotPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")
	slot, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := slot.Put(ctx, "cmd-tasks", `["x"]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "cmd-tasks")
	if err != nil || !ok || v != `["x"]` {
		t.Fatalf("unexpected value after reopen: %q ok=%v err=%v", v, ok, err)
	}
}

func TestSQLiteSlotClosedAndEmptyKey(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()
	if err := slot.Put(ctx, "", "x"); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	if _, _, err := slot.Get(ctx, "cmd-tasks"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on get, got %v", err)
	}
	if err := slot.Put(ctx, "cmd-tasks", "[]"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on put, got %v", err)
	}
}

func TestOpenSQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	slot, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	defer slot.Close()
	if err := slot.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if v, ok, _ := slot.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("expected value to survive across calls, got %q ok=%v", v, ok)
	}
}

func TestMemorySlotFailures(t *testing.T) {
	slot := NewMemorySlot()
	ctx := context.Background()
	if err := slot.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	slot.FailGet = true
	if _, _, err := slot.Get(ctx, "k"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	slot.FailPut = true
	if err := slot.Put(ctx, "k", "w"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if slot.Puts() != 1 {
		t.Fatalf("expected 1 successful put, got %d", slot.Puts())
	}
}
