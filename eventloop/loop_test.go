// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package eventloop

import (
	"context"
	"testing"
	"time"
)

func TestManualRunsTimersInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []int
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	m.AfterFunc(20*time.Millisecond, func() { got = append(got, 2) })

	m.Advance(15 * time.Millisecond)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("after 15ms expected [1], got %v", got)
	}
	m.Advance(20 * time.Millisecond)
	if len(got) != 3 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
	if m.Now() != 35*time.Millisecond {
		t.Fatalf("expected clock at 35ms, got %v", m.Now())
	}
}

func TestManualChainedTimersFireWithinWindow(t *testing.T) {
	m := NewManual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(100 * time.Millisecond)
	if ticks != 5 {
		t.Fatalf("expected 5 chained ticks, got %d", ticks)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", m.Pending())
	}
}

func TestManualStopPreventsRun(t *testing.T) {
	m := NewManual()
	ran := false
	timer := m.AfterFunc(time.Millisecond, func() { ran = true })
	if !timer.Stop() {
		t.Fatalf("first Stop should report true")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report false")
	}
	m.Advance(time.Second)
	if ran {
		t.Fatalf("stopped timer ran")
	}
}

func TestManualDrain(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 30 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(0, tick)
	m.Drain(time.Second)
	if count != 30 {
		t.Fatalf("expected 30 ticks, got %d", count)
	}
}

func TestLoopRunsPostedTasksInOrder(t *testing.T) {
	l := New(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan []int, 1)
	var got []int
	l.Post(func() { got = append(got, 1) })
	l.Post(func() { got = append(got, 2) })
	l.AfterFunc(5*time.Millisecond, func() {
		got = append(got, 3)
		done <- got
	})

	go func() { _ = l.Run(ctx) }()

	select {
	case res := <-done:
		if len(res) != 3 || res[0] != 1 || res[1] != 2 || res[2] != 3 {
			t.Fatalf("unexpected order %v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not run the timer")
	}
}

func TestLoopStoppedTimerDoesNotRun(t *testing.T) {
	l := New(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	fired := make(chan struct{}, 1)
	timer := l.AfterFunc(20*time.Millisecond, func() { fired <- struct{}{} })
	timer.Stop()

	select {
	case <-fired:
		t.Fatalf("stopped timer fired")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestPostAfterStopDoesNotBlock(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	cancel()
	if err := <-errc; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
	select {
	case <-l.Done():
	default:
		t.Fatalf("Done not closed after Run returned")
	}

	posted := make(chan struct{})
	go func() {
		for i := 0; i < 4; i++ {
			l.Post(func() {})
		}
		close(posted)
	}()
	select {
	case <-posted:
	case <-time.After(2 * time.Second):
		t.Fatalf("Post blocked on a stopped loop")
	}
	if err := l.Run(context.Background()); err != ErrStopped {
		t.Fatalf("second Run = %v, want ErrStopped", err)
	}
}
