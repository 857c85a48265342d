// Package loop provides the single goroutine that owns the client's
// paging state. Background work hands its results back with Post.
package loop

import (
	"context"
	"sync"
)

// Loop is an unbounded FIFO of tasks run one at a time by Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	notify chan struct{}
}

func New() *Loop {
	return &Loop{notify: make(chan struct{}, 1)}
}

// Post enqueues fn. It never blocks and is safe from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// Run executes tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// RunOnce waits for the next task and runs it.
func (l *Loop) RunOnce(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fn := l.pop(); fn != nil {
			fn()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.notify:
		}
	}
}

// Call posts fn and waits until it has run. Calling it from a task
// deadlocks.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len reports the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) pop() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn
}
