// Package tasks provides cancellable deferred work that stands in for simulated latency.
package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrCancelled is returned by Wait when the task was cancelled before it ran.
var ErrCancelled = errors.New("task cancelled")

type state int

const (
	statePending state = iota
	stateRunning
	stateFinished
	stateCancelled
)

// Handle tracks one scheduled task.
type Handle struct {
	ID  uuid.UUID
	Key string

	mu    sync.Mutex
	state state
	timer *time.Timer
	done  chan struct{}
}

// Done is closed once the task has run or was cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel stops a pending task. It reports whether the task was still pending;
// a task that already started runs to completion.
func (h *Handle) Cancel() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != statePending {
		return false
	}
	h.state = stateCancelled
	h.timer.Stop()
	close(h.done)
	return true
}

// Cancelled reports whether the task was cancelled before running.
func (h *Handle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == stateCancelled
}

// Wait blocks until the task finishes, is cancelled, or ctx ends.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		if h.Cancelled() {
			return ErrCancelled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handle) begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != statePending {
		return false
	}
	h.state = stateRunning
	return true
}

func (h *Handle) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = stateFinished
	close(h.done)
}

// Scheduler runs functions after a delay. Tasks sharing a non-empty key
// supersede each other: scheduling cancels the pending task with that key.
type Scheduler struct {
	logger *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]*Handle
	byKey   map[string]*Handle
}

// NewScheduler creates a scheduler. A nil logger uses slog.Default().
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger:  logger,
		pending: make(map[uuid.UUID]*Handle),
		byKey:   make(map[string]*Handle),
	}
}

// Schedule runs fn after delay on its own goroutine.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) *Handle {
	h := &Handle{ID: uuid.New(), Key: key, done: make(chan struct{})}

	s.mu.Lock()
	if key != "" {
		if previous, ok := s.byKey[key]; ok && previous.Cancel() {
			delete(s.pending, previous.ID)
			s.logger.Debug("superseded pending task", slog.String("key", key), slog.String("task_id", previous.ID.String()))
		}
		s.byKey[key] = h
	}
	s.pending[h.ID] = h
	// Assigned under h.mu so Cancel never sees a nil timer.
	h.mu.Lock()
	h.timer = time.AfterFunc(delay, func() { s.run(h, fn) })
	h.mu.Unlock()
	s.mu.Unlock()

	return h
}

func (s *Scheduler) run(h *Handle, fn func()) {
	if !h.begin() {
		return
	}
	defer func() {
		h.finish()
		s.forget(h)
	}()
	fn()
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h.ID)
	if h.Key != "" && s.byKey[h.Key] == h {
		delete(s.byKey, h.Key)
	}
}

// CancelAll cancels every pending task and returns how many were stopped.
func (s *Scheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, h := range s.pending {
		if h.Cancel() {
			n++
		}
		delete(s.pending, id)
	}
	clear(s.byKey)
	return n
}

// Pending returns the number of tasks not yet finished or cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
