// Package scheduler wraps repeating timers with explicit cancellation, the
// server-side equivalent of the setInterval/clearInterval pairs that drive a
// room's countdown and word spawning.
package scheduler

import (
	"sync"
	"time"
)

// Task is a repeating job created by Every. Stop is idempotent and safe to
// call from inside the task's own callback.
type Task struct {
	ticker   *time.Ticker
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Every runs fn on its own goroutine once per interval until Stop is called.
func Every(interval time.Duration, fn func()) *Task {
	t := &Task{
		ticker: time.NewTicker(interval),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		for {
			select {
			case <-t.quit:
				return
			case <-t.ticker.C:
				fn()
			}
		}
	}()
	return t
}

// Stop cancels the task. No new invocation of fn starts after Stop returns;
// an invocation already in flight finishes on its own.
func (t *Task) Stop() {
	t.stopOnce.Do(func() {
		t.ticker.Stop()
		close(t.quit)
	})
}

// StopWait cancels the task and blocks until its goroutine has exited. Never
// call it from inside fn, and never while holding a lock fn takes.
func (t *Task) StopWait() {
	t.Stop()
	<-t.done
}
