// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: eventloop/loop.go
// Summary: Single UI-thread event loop shared by the document, animations and gestures.
// Usage: The terminal host posts input onto the loop; animations schedule ticks on it.
// Notes: Every callback runs on the loop goroutine, so nothing downstream takes locks.

package eventloop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunning is returned when Run is called on a loop that is already running.
var ErrRunning = errors.New("eventloop: already running")

// ErrStopped is returned when Run is called on a loop whose Run has returned.
var ErrStopped = errors.New("eventloop: stopped")

// Timer is a pending continuation that can be stopped before it runs.
type Timer interface {
	// Stop prevents the continuation from running. It reports whether the
	// call stopped the timer (false when it already ran or was stopped).
	Stop() bool
}

// Scheduler schedules continuations on the UI thread.
type Scheduler interface {
	// Post queues fn to run on a future turn of the loop.
	Post(fn func())
	// AfterFunc runs fn on the loop once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Loop is the production scheduler: one goroutine drains a task queue in order.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

// New creates a loop with the given task queue depth.
func New(queue int) *Loop {
	if queue <= 0 {
		queue = 256
	}
	return &Loop{tasks: make(chan func(), queue), done: make(chan struct{})}
}

// Post queues fn. It blocks only when the queue is full. Once Run has
// returned, fn is dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// AfterFunc arms a wall-clock timer that posts fn back onto the loop.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.fire() {
				fn()
			}
		})
	})
	return t
}

// Run executes tasks until ctx is cancelled. A loop runs at most once.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	switch {
	case l.running:
		l.mu.Unlock()
		return ErrRunning
	case l.stopped:
		l.mu.Unlock()
		return ErrStopped
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.stopped = true
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// loopTimer guards against a stopped timer whose post was already queued.
type loopTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	fired   bool
}

func (t *loopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

func (t *loopTimer) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.fired = true
	return true
}
