package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        "01J0000000000000000000000A",
		Text:      "buy milk",
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateMissingFields(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		task Task
		want error
	}{
		{"id", Task{Text: "x", CreatedAt: now}, ErrMissingID},
		{"text", Task{ID: "1", Text: "  ", CreatedAt: now}, ErrMissingText},
	}
	for _, tc := range cases {
		err := tc.task.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestTaskJSONShape(t *testing.T) {
	task := Task{
		ID:        "1707480000000",
		Text:      "Buy Milk",
		Completed: true,
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"1707480000000","text":"Buy Milk","completed":true,"createdAt":"2026-02-09T12:00:00.000Z"}`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", raw, want)
	}
}

func TestTaskUnmarshalBrowserRecord(t *testing.T) {
	in := `{"id":"1707480000000","text":"walk dog","completed":false,"createdAt":"2024-02-09T12:00:00.123Z"}`
	var task Task
	if err := json.Unmarshal([]byte(in), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.Text != "walk dog" || task.Completed {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.CreatedAt.Nanosecond() != 123_000_000 {
		t.Fatalf("expected millisecond precision, got %v", task.CreatedAt)
	}
}

func TestTaskUnmarshalDateForms(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-09", time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)},
		{"2024-02-09T08:30:00+02:00", time.Date(2024, 2, 9, 6, 30, 0, 0, time.UTC)},
		{"2024-02-09T08:30", time.Date(2024, 2, 9, 8, 30, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		var task Task
		if err := json.Unmarshal([]byte(`{"id":"1","text":"x","createdAt":"`+tc.in+`"}`), &task); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.in, err)
		}
		if !task.CreatedAt.Equal(tc.want) {
			t.Fatalf("%s: createdAt = %v, want %v", tc.in, task.CreatedAt, tc.want)
		}
	}
}

func TestTaskUnreadableTimeKeepsRecord(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":"1","text":"x","createdAt":"yesterday"}`), &task); err != nil {
		t.Fatalf("unreadable createdAt should not fail the record: %v", err)
	}
	if task.Text != "x" || !task.CreatedAt.IsZero() {
		t.Fatalf("unexpected task: %+v", task)
	}
	if got := task.FormatDate("1/2/2006", time.UTC); got != InvalidDate {
		t.Fatalf("FormatDate = %q, want %q", got, InvalidDate)
	}
	raw, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"createdAt":"yesterday"`) {
		t.Fatalf("expected original createdAt preserved, got %s", raw)
	}
}

func TestTaskStatusGlyph(t *testing.T) {
	if (Task{}).Status() != "○" {
		t.Fatal("expected pending glyph")
	}
	if (Task{Completed: true}).Status() != "✓" {
		t.Fatal("expected completed glyph")
	}
}
