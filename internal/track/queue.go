package track

import (
	"context"
	"errors"
	"sync"

	"github.com/Karnakarj/areahunt/internal/shared/model"
)

var (
	ErrWatchActive = errors.New("watch already active")
	ErrNotWatching = errors.New("no active watch")
	ErrBacklog     = errors.New("fix backlog full")
)

// FixSource is the platform position stream. Watch yields fixes until ctx
// is cancelled; at most one watch may be active at a time.
type FixSource interface {
	Watch(ctx context.Context) (<-chan model.Fix, error)
}

// FixQueue feeds fixes delivered over HTTP into a watch. Pushes never
// block: a full backlog drops the fix rather than stalling the arrival
// stream.
type FixQueue struct {
	size int
	mu   sync.Mutex
	ch   chan model.Fix
}

func NewFixQueue(size int) *FixQueue {
	if size <= 0 {
		size = 64
	}
	return &FixQueue{size: size}
}

func (q *FixQueue) Watch(ctx context.Context) (<-chan model.Fix, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ch != nil {
		return nil, ErrWatchActive
	}

	ch := make(chan model.Fix, q.size)
	q.ch = ch
	go func() {
		<-ctx.Done()
		q.mu.Lock()
		if q.ch == ch {
			q.ch = nil
		}
		q.mu.Unlock()
	}()
	return ch, nil
}

func (q *FixQueue) Push(fix model.Fix) error {
	q.mu.Lock()
	ch := q.ch
	q.mu.Unlock()
	if ch == nil {
		return ErrNotWatching
	}

	select {
	case ch <- fix:
		return nil
	default:
		return ErrBacklog
	}
}
