package server

import (
	"strings"
	"sync"
	"time"

	"archsmith/internal/runner"
)

const completedRunRetention = 30 * time.Second

// RunRegistry manages per-run progress event channels so watchers can attach
// after a run has started.
type RunRegistry struct {
	mu   sync.RWMutex
	runs map[string]chan runner.ProgressEvent
}

func NewRunRegistry() *RunRegistry {
	return &RunRegistry{runs: make(map[string]chan runner.ProgressEvent)}
}

// Allocate creates and registers the event channel for a run.
func (r *RunRegistry) Allocate(runID string, size int) chan runner.ProgressEvent {
	if size <= 0 {
		size = 1
	}
	ch := make(chan runner.ProgressEvent, size)
	r.mu.Lock()
	r.runs[strings.TrimSpace(runID)] = ch
	r.mu.Unlock()
	return ch
}

// Get returns the event channel for a run.
func (r *RunRegistry) Get(runID string) (chan runner.ProgressEvent, bool) {
	r.mu.RLock()
	ch, ok := r.runs[strings.TrimSpace(runID)]
	r.mu.RUnlock()
	return ch, ok
}

// ScheduleCleanup drops a run's channel after a retention window, leaving
// late watchers time to drain the buffer.
func (r *RunRegistry) ScheduleCleanup(runID string) {
	time.AfterFunc(completedRunRetention, func() {
		r.mu.Lock()
		delete(r.runs, strings.TrimSpace(runID))
		r.mu.Unlock()
	})
}
