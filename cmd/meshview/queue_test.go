package main

import (
	"context"
	"sync"
	"testing"

	"github.com/Faultbox/meshview/internal/ingest"
	"github.com/Faultbox/meshview/internal/viewer"
)

func TestLoadQueueKeepsLatest(t *testing.T) {
	var q loadQueue

	if _, ok := q.take(); ok {
		t.Fatal("expected empty queue")
	}

	q.push("a.obj")
	q.push("b.stl")

	path, ok := q.take()
	if !ok || path != "b.stl" {
		t.Errorf("expected b.stl, got %q (ok=%v)", path, ok)
	}
	if _, ok := q.take(); ok {
		t.Error("expected queue drained after take")
	}
}

func TestLoadQueueConcurrentPush(t *testing.T) {
	var q loadQueue
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.push("cube.stl")
		}()
	}
	wg.Wait()

	if path, ok := q.take(); !ok || path != "cube.stl" {
		t.Errorf("expected cube.stl, got %q (ok=%v)", path, ok)
	}
}

func TestStatusLineFollowsHolder(t *testing.T) {
	var line statusLine
	h := viewer.NewHolder(ingest.NewDispatcher(ingest.Parsers{}), nil)
	unsubscribe := h.Subscribe(line.set)
	defer unsubscribe()

	h.Load(context.Background(), ingest.NewMemoryFile("notes.txt", []byte("hello")))

	s, changed := line.take()
	if !changed {
		t.Fatal("expected status change")
	}
	if !s.Unsupported() {
		t.Errorf("expected unsupported status, got %+v", s)
	}
	if _, changed := line.take(); changed {
		t.Error("expected no change after take")
	}
}

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		name   string
		status viewer.Status
		want   string
	}{
		{
			name:   "idle prompt",
			status: viewer.Status{Phase: viewer.PhaseIdle, Message: viewer.PromptMessage},
			want:   "meshview",
		},
		{
			name:   "unsupported",
			status: viewer.Status{Phase: viewer.PhaseIdle, File: "notes.txt", Message: viewer.UnsupportedMessage},
			want:   "meshview - " + viewer.UnsupportedMessage,
		},
		{
			name:   "loaded",
			status: viewer.Status{Phase: viewer.PhaseLoaded, File: "cube.stl", Message: "Loaded cube.stl"},
			want:   "meshview - Loaded cube.stl",
		},
		{
			name:   "error",
			status: viewer.Status{Phase: viewer.PhaseError, File: "empty.stl", Message: "Failed to load empty.stl."},
			want:   "meshview - Failed to load empty.stl.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTitle("meshview", tt.status); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestModelExtensions(t *testing.T) {
	got := modelExtensions()
	if len(got) != 2 || got[0] != "obj" || got[1] != "stl" {
		t.Errorf("expected [obj stl], got %v", got)
	}
}
