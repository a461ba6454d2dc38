// Package store owns the task collection. Every mutation is a full
// read-modify-write of one JSON array held in a storage.Slot; there is no
// partial update and no guard against a second writer (last write wins).
package store

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sandeepkv93/tasksh/internal/log"
	"github.com/sandeepkv93/tasksh/internal/model"
	"github.com/sandeepkv93/tasksh/internal/storage"
)

const DefaultKey = "cmd-tasks"

type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEntropy overrides the ULID entropy source.
func WithEntropy(r io.Reader) Option {
	return func(s *Store) { s.entropy = ulid.Monotonic(r, 0) }
}

type Store struct {
	mu      sync.Mutex
	slot    storage.Slot
	key     string
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

func New(slot storage.Slot, key string, opts ...Option) *Store {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	s := &Store{
		slot:    slot,
		key:     key,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Key() string { return s.key }

// Load returns the stored tasks in insertion order. A missing, unreadable
// or corrupt slot yields an empty list; the failure is only logged.
func (s *Store) Load(ctx context.Context) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) Add(ctx context.Context, text string) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.load(ctx)
	now := s.now().UTC().Truncate(time.Millisecond)
	task := model.Task{
		ID:        s.newID(now),
		Text:      text,
		Completed: false,
		CreatedAt: now,
	}
	tasks = append(tasks, task)
	s.save(ctx, tasks)
	return task
}

// Toggle flips Completed on the task with id. ok is false if no such task.
func (s *Store) Toggle(ctx context.Context, id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.load(ctx)
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		s.save(ctx, tasks)
		return tasks[i], true
	}
	return model.Task{}, false
}

// Delete removes the task with id and reports whether anything was removed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.load(ctx)
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false
	}
	s.save(ctx, kept)
	return true
}

func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, []model.Task{})
}

// load decodes record by record so one bad entry does not cost the rest.
// Records without an id or text are dropped; an unreadable createdAt is
// kept and shown as an invalid date.
func (s *Store) load(ctx context.Context) []model.Task {
	logger := log.FromContext(ctx)
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		logger.Errorf("Error loading tasks: %v", err)
		return []model.Task{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}
	}
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logger.Errorf("Error loading tasks: %v", err)
		return []model.Task{}
	}
	tasks := make([]model.Task, 0, len(records))
	for i, rec := range records {
		var t model.Task
		if err := json.Unmarshal(rec, &t); err != nil {
			logger.Printf("dropping task record %d: %v", i+1, err)
			continue
		}
		if err := t.Validate(); err != nil {
			logger.Printf("dropping task record %d: %v", i+1, err)
			continue
		}
		if t.CreatedAt.IsZero() {
			logger.Printf("task %s has an unreadable createdAt", t.ID)
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (s *Store) save(ctx context.Context, tasks []model.Task) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		log.FromContext(ctx).Errorf("Error saving tasks: %v", err)
		return
	}
	if err := s.slot.Put(ctx, s.key, string(payload)); err != nil {
		log.FromContext(ctx).Errorf("Error saving tasks: %v", err)
		return
	}
	log.FromContext(ctx).Debugf("saved %d task(s) under %s", len(tasks), s.key)
}

func (s *Store) newID(at time.Time) string {
	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		// monotonic entropy exhausted within this millisecond
		return ulid.Make().String()
	}
	return id.String()
}
