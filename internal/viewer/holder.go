// Package viewer holds the single model on display and the status of the
// load that produced it.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/ingest"
)

// Parser turns a source file into a model.
type Parser interface {
	Parse(ctx context.Context, src ingest.SourceFile) (model.Model, error)
}

// Snapshot is a consistent view of the holder.
type Snapshot struct {
	Status     Status
	Model      *model.Normalized // nil until the first successful load
	Generation uint64            // incremented by every Load and Clear
}

// Holder owns the current model. Load may run on any goroutine; when loads
// overlap the last one requested wins and earlier results are discarded.
type Holder struct {
	parser Parser
	log    *zap.Logger

	mu         sync.Mutex
	status     Status
	current    *model.Normalized
	generation uint64
	cancel     context.CancelFunc
	lastSource ingest.SourceFile
	pending    []Snapshot

	// notifyMu serializes observer delivery so it follows transition order.
	notifyMu  sync.Mutex
	observers map[int]func(Snapshot)
	nextID    int
}

// NewHolder creates a holder in the idle state. log receives load failures;
// nil is replaced by a no-op logger.
func NewHolder(parser Parser, log *zap.Logger) *Holder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Holder{
		parser:    parser,
		log:       log,
		status:    idleStatus(),
		observers: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current status and model.
func (h *Holder) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Holder) snapshotLocked() Snapshot {
	return Snapshot{Status: h.status, Model: h.current, Generation: h.generation}
}

// Subscribe registers fn to be called after every status transition.
// Observers must not call Load, Reload or Clear.
func (h *Holder) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	id := h.nextID
	h.nextID++
	h.observers[id] = fn

	return func() {
		h.notifyMu.Lock()
		defer h.notifyMu.Unlock()
		delete(h.observers, id)
	}
}

// Load reads, parses and normalizes src, then makes it the current model.
// It blocks until done. Failures are reported through the status and the
// diagnostic log; the previous model stays on display.
func (h *Holder) Load(ctx context.Context, src ingest.SourceFile) {
	gen, loadCtx, cancel := h.begin(ctx, src)
	defer cancel()

	normalized, err := h.parse(loadCtx, src)
	h.finish(gen, src, normalized, err)
}

// Reload loads the last successfully loaded file again. It returns false
// when there is nothing to reload.
func (h *Holder) Reload(ctx context.Context) bool {
	h.mu.Lock()
	src := h.lastSource
	h.mu.Unlock()

	if src == nil {
		return false
	}
	h.Load(ctx, src)
	return true
}

// Clear drops the current model, abandons any load in flight and returns to
// the idle prompt.
func (h *Holder) Clear() {
	h.mu.Lock()
	h.generation++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.current = nil
	h.lastSource = nil
	h.status = idleStatus()
	h.log.Debug("model cleared", zap.Uint64("generation", h.generation))
	h.publishLocked()
}

// FirstDropped picks the file to load from a drop. Only the first path is
// used.
func (h *Holder) FirstDropped(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	if len(paths) > 1 {
		h.log.Debug("ignoring extra dropped files",
			zap.String("using", paths[0]),
			zap.Strings("ignored", paths[1:]))
	}
	return paths[0], true
}

func (h *Holder) begin(ctx context.Context, src ingest.SourceFile) (uint64, context.Context, context.CancelFunc) {
	loadCtx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.generation++
	gen := h.generation
	h.cancel = cancel
	h.status = loadingStatus(src.Name())
	h.log.Debug("load started", zap.String("file", src.Name()), zap.Uint64("generation", gen))
	h.publishLocked()

	return gen, loadCtx, cancel
}

func (h *Holder) parse(ctx context.Context, src ingest.SourceFile) (n *model.Normalized, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	parsed, err := h.parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	return model.Normalize(parsed), nil
}

func (h *Holder) finish(gen uint64, src ingest.SourceFile, n *model.Normalized, err error) {
	name := src.Name()

	h.mu.Lock()
	if gen != h.generation {
		h.mu.Unlock()
		h.log.Debug("discarding stale load",
			zap.String("file", name),
			zap.Uint64("generation", gen),
			zap.Error(err))
		return
	}
	h.cancel = nil

	switch {
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		h.status = unsupportedStatus(name)
		h.log.Info("unsupported file type", zap.String("file", name))

	case err != nil:
		h.status = errorStatus(name)
		h.log.Error("failed to load model", zap.String("file", name), zap.Error(err))

	default:
		h.current = n
		h.lastSource = src
		h.status = loadedStatus(name)
		h.log.Info("model loaded",
			zap.String("file", name),
			zap.Stringer("kind", n.Model.Kind()),
			zap.Int("meshes", model.CountMeshes(n.Model)),
			zap.Int("triangles", model.CountTriangles(n.Model)),
			zap.Float32("radius", n.Bounds.Radius()))
	}

	h.publishLocked()
}

// publishLocked queues the current state for observers, releases h.mu and
// delivers everything queued so far.
func (h *Holder) publishLocked() {
	h.pending = append(h.pending, h.snapshotLocked())
	h.mu.Unlock()
	h.drain()
}

func (h *Holder) drain() {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	for {
		h.mu.Lock()
		if len(h.pending) == 0 {
			h.mu.Unlock()
			return
		}
		snap := h.pending[0]
		h.pending = h.pending[1:]
		h.mu.Unlock()

		for _, fn := range h.observers {
			fn(snap)
		}
	}
}
