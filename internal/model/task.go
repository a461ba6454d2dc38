package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingID   = errors.New("model: task id is required")
	ErrMissingText = errors.New("model: task text is required")
)

// TimeLayout is millisecond ISO-8601, the JavaScript Date.toISOString form.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// InvalidDate is shown for a task whose createdAt could not be read.
const InvalidDate = "Invalid Date"

// createdLayouts are the ISO-8601 forms accepted on read. Date-only values
// are UTC and zone-less date-times are local, as in JavaScript.
var createdLayouts = []struct {
	layout string
	utc    bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02", true},
}

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`

	// rawCreatedAt keeps an unreadable createdAt so a rewrite preserves it.
	rawCreatedAt string
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: id %s", ErrMissingText, t.ID)
	}
	return nil
}

type taskJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	created := t.rawCreatedAt
	if !t.CreatedAt.IsZero() {
		created = t.CreatedAt.UTC().Format(TimeLayout)
	}
	return json.Marshal(taskJSON{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: created,
	})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Task{ID: raw.ID, Text: raw.Text, Completed: raw.Completed}
	if created, ok := parseCreated(raw.CreatedAt); ok {
		out.CreatedAt = created
	} else {
		out.rawCreatedAt = raw.CreatedAt
	}
	*t = out
	return nil
}

func parseCreated(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range createdLayouts {
		loc := time.Local
		if l.utc {
			loc = time.UTC
		}
		if at, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders CreatedAt in loc, or InvalidDate when it is unknown.
func (t Task) FormatDate(layout string, loc *time.Location) string {
	if t.CreatedAt.IsZero() {
		return InvalidDate
	}
	if loc == nil {
		loc = time.Local
	}
	return t.CreatedAt.In(loc).Format(layout)
}

// Status is the glyph the terminal listing prints for a task.
func (t Task) Status() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}
