package viewmodel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// scope runs the tasks of one view-model. Tasks started under a key that is
// already running join the running task instead of starting another.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
	flight singleflight.Group

	// mu orders launch against close so that no task is added to group
	// once close has started waiting on it.
	mu     sync.Mutex
	closed bool
}

func newScope(parent context.Context) *scope {
	ctx, cancel := context.WithCancel(parent)
	return &scope{ctx: ctx, cancel: cancel}
}

// launch starts fn in the background. It is a no-op once the scope is closed.
func (s *scope) launch(key string, fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.ctx.Err() != nil {
		return
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		fn(s.ctx)
		return nil, nil
	})
	s.group.Go(func() error {
		<-ch
		return nil
	})
}

// wait blocks until every launched task has finished.
func (s *scope) wait() {
	_ = s.group.Wait()
}

func (s *scope) close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.wait()
}
