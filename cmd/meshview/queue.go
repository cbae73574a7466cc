package main

import (
	"fmt"
	"sync"

	"github.com/Faultbox/meshview/internal/viewer"
)

// loadQueue hands file paths from the dialog goroutine and the drop callback
// to the frame loop. Only the latest path is kept.
type loadQueue struct {
	mu   sync.Mutex
	path string
	ok   bool
}

func (q *loadQueue) push(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.path = path
	q.ok = true
}

func (q *loadQueue) take() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	path, ok := q.path, q.ok
	q.path, q.ok = "", false
	return path, ok
}

// statusLine keeps the latest holder status for the frame loop, which owns
// the window.
type statusLine struct {
	mu      sync.Mutex
	status  viewer.Status
	changed bool
}

// set is the holder observer.
func (l *statusLine) set(s viewer.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = s.Status
	l.changed = true
}

// take returns the latest status and whether it changed since the last take.
func (l *statusLine) take() (viewer.Status, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	changed := l.changed
	l.changed = false
	return l.status, changed
}

// windowTitle returns the title for a status.
func windowTitle(base string, s viewer.Status) string {
	if s.Phase == viewer.PhaseIdle && !s.Unsupported() {
		return base
	}
	return fmt.Sprintf("%s - %s", base, s.Message)
}
