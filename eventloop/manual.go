// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: eventloop/manual.go
// Summary: Deterministic scheduler with a virtual clock.
// Usage: Tests drive animations and gestures by advancing time explicitly.

package eventloop

import (
	"sort"
	"time"
)

// Manual is a Scheduler whose clock only moves when Advance is called.
// It is not safe for concurrent use; tests drive it from one goroutine.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
	posted []func()
}

type manualTimer struct {
	m        *Manual
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewManual returns a scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

func (m *Manual) Post(fn func()) {
	if fn != nil {
		m.posted = append(m.posted, fn)
	}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, deadline: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Pending reports how many timers are armed.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// RunPending drains posted tasks, including tasks posted while draining.
func (m *Manual) RunPending() {
	for len(m.posted) > 0 {
		fn := m.posted[0]
		m.posted = m.posted[1:]
		fn()
	}
}

// Advance moves the clock forward by d, running every timer that comes due
// in deadline order. Timers armed by callbacks run too if they fall inside
// the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		m.RunPending()
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		next.done = true
		next.fn()
	}
	m.now = target
	m.compact()
}

// Drain advances until no timers remain, up to limit of virtual time.
func (m *Manual) Drain(limit time.Duration) {
	stop := m.now + limit
	for m.Pending() > 0 && m.now < stop {
		next := m.nextDue(stop)
		if next == nil {
			break
		}
		m.Advance(next.deadline - m.now)
	}
	m.RunPending()
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	m.timers = live
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].deadline == live[j].deadline {
			return live[i].seq < live[j].seq
		}
		return live[i].deadline < live[j].deadline
	})
	if live[0].deadline > limit {
		return nil
	}
	return live[0]
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	m.timers = live
}
