package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/Karnakarj/areahunt/internal/shared/model"
	"github.com/Karnakarj/areahunt/internal/store"
	"github.com/Karnakarj/areahunt/internal/stream"
)

var (
	ErrTracking    = errors.New("tracking already active")
	ErrNotTracking = errors.New("tracking not active")
	ErrNoSource    = errors.New("no location source available")
)

// A path shorter than this is not a walk and is never archived.
const minArchivePoints = 2

// Status is the live session view served to the UI.
type Status struct {
	Tracking bool       `json:"tracking"`
	Location *model.Fix `json:"location,omitempty"`
	PathLen  int        `json:"path_len"`
}

// Recorder owns the active path lifecycle: it consumes the fix stream
// through the Filter, persists every accepted point write-through, and
// archives the path when tracking stops. Fixes are handled one at a time
// by a single goroutine, so the path needs no locking against itself;
// the mutex only guards reads from other goroutines.
type Recorder struct {
	store      store.Store
	hub        *stream.Hub
	source     FixSource
	filter     Filter
	fixTimeout time.Duration

	mu       sync.Mutex
	tracking bool
	path     []model.Coordinate
	lastFix  *model.Fix
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewRecorder(cfg config.Config, st store.Store, hub *stream.Hub, source FixSource) *Recorder {
	timeout := time.Duration(cfg.FixTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	r := &Recorder{
		store:      st,
		hub:        hub,
		source:     source,
		filter:     NewFilter(cfg),
		fixTimeout: timeout,
	}
	r.path = st.LoadActivePath(context.Background())
	return r
}

// Resume restarts tracking when a non-empty active path survived the
// previous run, without waiting for a user action. Called once at
// startup.
func (r *Recorder) Resume(ctx context.Context) {
	r.mu.Lock()
	n := len(r.path)
	r.mu.Unlock()
	if n == 0 {
		return
	}
	if err := r.Start(ctx); err != nil {
		log.Printf("track: resume failed, staying idle with %d persisted points: %v", n, err)
	}
}

// Start transitions Idle -> Tracking. Fails without side effects when
// tracking is already active or no fix source can be acquired.
func (r *Recorder) Start(_ context.Context) error {
	r.mu.Lock()
	if r.tracking {
		r.mu.Unlock()
		return ErrTracking
	}
	if r.source == nil {
		r.mu.Unlock()
		return ErrNoSource
	}

	// the watch outlives the request that started it
	watchCtx, cancel := context.WithCancel(context.Background())
	fixes, err := r.source.Watch(watchCtx)
	if err != nil {
		cancel()
		r.mu.Unlock()
		return err
	}

	r.tracking = true
	r.cancel = cancel
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	go r.loop(watchCtx, fixes, done)
	r.broadcast(stateEvent{Type: "state", Tracking: true})
	return nil
}

// Stop transitions Tracking -> Idle. The active path is archived into
// history iff it has at least minArchivePoints points; either way the
// persisted active path is cleared and the in-memory path reset. When
// archival itself fails the active path stays persisted so the walk is
// not lost.
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.tracking {
		r.mu.Unlock()
		return ErrNotTracking
	}
	r.tracking = false
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	cancel()
	<-done // drain the in-flight fix before touching the path

	r.mu.Lock()
	path := r.path
	r.path = nil
	r.mu.Unlock()

	archived := false
	if len(path) >= minArchivePoints {
		history := append(r.store.LoadHistory(ctx), path)
		if err := r.store.SaveHistory(ctx, history); err != nil {
			r.mu.Lock()
			r.path = path
			r.mu.Unlock()
			return fmt.Errorf("archive walk: %w", err)
		}
		archived = true
	}
	if err := r.store.SaveActivePath(ctx, nil); err != nil {
		log.Printf("track: clear active path: %v", err)
	}

	r.broadcast(stateEvent{Type: "state", Tracking: false})
	if archived {
		r.broadcast(archiveEvent{Type: "archived", Points: len(path)})
	}
	return nil
}

func (r *Recorder) loop(ctx context.Context, fixes <-chan model.Fix, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(r.fixTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case fix, ok := <-fixes:
			if !ok {
				return
			}
			r.handleFix(ctx, fix)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.fixTimeout)
		case <-timer.C:
			// fix-unavailable is reported, never fatal: keep waiting
			log.Printf("track: no fix received in %s", r.fixTimeout)
			timer.Reset(r.fixTimeout)
		}
	}
}

func (r *Recorder) handleFix(ctx context.Context, fix model.Fix) {
	r.mu.Lock()
	r.lastFix = &fix
	if !r.filter.Accept(r.path, fix) {
		r.mu.Unlock()
		r.broadcast(fixEvent{Type: "location", Fix: fix, Recorded: false})
		return
	}
	r.path = append(r.path, fix.Coordinate())
	snapshot := make([]model.Coordinate, len(r.path))
	copy(snapshot, r.path)
	r.mu.Unlock()

	if err := r.store.SaveActivePath(ctx, snapshot); err != nil {
		log.Printf("track: persist active path: %v", err)
	}
	r.broadcast(fixEvent{Type: "location", Fix: fix, Recorded: true})
}

// Tracking reports whether a session is active.
func (r *Recorder) Tracking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracking
}

// Path returns a copy of the active path.
func (r *Recorder) Path() []model.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Coordinate, len(r.path))
	copy(out, r.path)
	return out
}

// Location returns the last known fix, recorded or not, so the UI can
// always draw the live dot.
func (r *Recorder) Location() (model.Fix, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFix == nil {
		return model.Fix{}, false
	}
	return *r.lastFix, true
}

func (r *Recorder) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Status{Tracking: r.tracking, PathLen: len(r.path)}
	if r.lastFix != nil {
		fix := *r.lastFix
		s.Location = &fix
	}
	return s
}

// ClearPath drops the in-memory active path. Used by the clear-all
// operation, which already removed the persisted records.
func (r *Recorder) ClearPath() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = nil
}

type fixEvent struct {
	Type     string    `json:"type"`
	Fix      model.Fix `json:"fix"`
	Recorded bool      `json:"recorded"`
}

type stateEvent struct {
	Type     string `json:"type"`
	Tracking bool   `json:"tracking"`
}

type archiveEvent struct {
	Type   string `json:"type"`
	Points int    `json:"points"`
}

func (r *Recorder) broadcast(v any) {
	if r.hub == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	r.hub.Broadcast(stream.TopicTrack, payload)
}
