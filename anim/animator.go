// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/animator.go
// Summary: Tick-driven interpolation of string-valued style properties.
// Usage: Animate(el, Styles{"left": "0px"}, 250*time.Millisecond, EaseOutQuad, done).
// Notes: Each element has one Controller; a newer run takes over the properties it
//   shares with older runs. Ticks run on the document's scheduler.

package anim

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/eventloop"
)

// DefaultTickPeriod is the nominal interval between ticks.
const DefaultTickPeriod = 10 * time.Millisecond

var tickPeriod atomic.Int64

func init() {
	tickPeriod.Store(int64(DefaultTickPeriod))
}

// SetTickPeriod changes the tick interval for runs started afterwards.
// Non-positive values restore the default.
func SetTickPeriod(d time.Duration) {
	if d <= 0 {
		d = DefaultTickPeriod
	}
	tickPeriod.Store(int64(d))
}

// TickPeriod returns the current tick interval.
func TickPeriod() time.Duration {
	return time.Duration(tickPeriod.Load())
}

// Styles maps a property name to its final value.
type Styles map[string]string

type property struct {
	name       string
	initial    string
	target     string
	initTokens []Token
	tgtTokens  []Token
	mismatched bool
}

// blend rewrites the target value with every token replaced by a calc()
// blend from the paired initial token.
func (p *property) blend(eased float64) string {
	e := strconv.FormatFloat(eased, 'f', -1, 64)
	var b strings.Builder
	last := 0
	for i, tok := range p.tgtTokens {
		from := p.initTokens[i].Text
		b.WriteString(p.target[last:tok.Start])
		b.WriteString("calc(")
		b.WriteString(from)
		b.WriteString(" + ")
		b.WriteString(e)
		b.WriteString(" * (")
		b.WriteString(tok.Text)
		b.WriteString(" - ")
		b.WriteString(from)
		b.WriteString("))")
		last = tok.End
	}
	b.WriteString(p.target[last:])
	return b.String()
}

// Run is one in-flight animation.
type Run struct {
	ctrl       *Controller
	el         *dom.Element
	props      []*property
	steps      float64
	tick       int
	progress   float64
	easing     EasingFunc
	onComplete func(*dom.Element)
	timer      eventloop.Timer
	done       bool
	canceled   bool
}

// Animate transitions el's properties to styles over duration. The first
// tick is applied before Animate returns; onComplete (may be nil) runs once
// when the final values are committed.
func Animate(el *dom.Element, styles Styles, duration time.Duration, easing EasingFunc, onComplete func(*dom.Element)) *Run {
	if easing == nil {
		easing = Linear
	}
	period := TickPeriod()
	r := &Run{
		el:         el,
		steps:      float64(duration) / float64(period),
		easing:     easing,
		onComplete: onComplete,
	}

	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	// capture every initial value before anything is written
	for _, name := range names {
		initial := el.ComputedStyle(name)
		if initial == "" {
			initial = el.Style(name)
		}
		p := &property{
			name:       name,
			initial:    initial,
			target:     styles[name],
			initTokens: Tokenize(initial),
			tgtTokens:  Tokenize(styles[name]),
		}
		if len(p.tgtTokens) > 0 && len(p.initTokens) != len(p.tgtTokens) {
			p.mismatched = true
			log.Printf("Animator: %s %q -> %q has %d vs %d tokens, committing at end only",
				name, initial, p.target, len(p.initTokens), len(p.tgtTokens))
		}
		r.props = append(r.props, p)
	}

	r.ctrl = For(el)
	r.ctrl.adopt(r)
	r.step(period)
	return r
}

func (r *Run) step(period time.Duration) {
	if r.done {
		return
	}
	if r.progress >= 1 {
		r.commit()
		return
	}
	eased := r.easing(r.progress)
	for _, p := range r.props {
		if len(p.tgtTokens) == 0 || p.mismatched {
			continue
		}
		r.el.SetStyle(p.name, p.blend(eased))
	}
	r.tick++
	if r.steps > 0 {
		r.progress = float64(r.tick) / r.steps
	} else {
		r.progress = 1
	}

	sched := r.scheduler()
	if sched == nil {
		// Detached from any loop: finish immediately.
		r.commit()
		return
	}
	r.timer = sched.AfterFunc(period, func() { r.step(period) })
}

func (r *Run) scheduler() eventloop.Scheduler {
	doc := r.el.Document()
	if doc == nil {
		return nil
	}
	return doc.Scheduler()
}

func (r *Run) commit() {
	r.done = true
	for _, p := range r.props {
		r.el.SetStyle(p.name, p.target)
	}
	r.ctrl.release(r)
	if r.onComplete != nil {
		r.onComplete(r.el)
	}
}

// Done reports whether the run committed or was canceled.
func (r *Run) Done() bool { return r.done }

// Canceled reports whether the run ended without committing.
func (r *Run) Canceled() bool { return r.canceled }

// Progress returns the linear progress of the run. It reaches 1 on commit.
func (r *Run) Progress() float64 {
	if r.done && !r.canceled {
		return 1
	}
	return r.progress
}

// Properties lists the properties still driven by the run.
func (r *Run) Properties() []string {
	out := make([]string, 0, len(r.props))
	for _, p := range r.props {
		out = append(out, p.name)
	}
	return out
}

// Mismatched lists properties whose initial and target token counts differ.
// Those properties jump to their target on commit.
func (r *Run) Mismatched() []string {
	var out []string
	for _, p := range r.props {
		if p.mismatched {
			out = append(out, p.name)
		}
	}
	return out
}

// Cancel stops the run, leaving the last blended values in place. The
// completion callback is not invoked.
func (r *Run) Cancel() {
	if r.done {
		return
	}
	r.stop()
	r.ctrl.release(r)
}

func (r *Run) stop() {
	r.done = true
	r.canceled = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// drop removes a property taken over by a newer run.
func (r *Run) drop(name string) {
	for i, p := range r.props {
		if p.name == name {
			r.props = append(r.props[:i], r.props[i+1:]...)
			return
		}
	}
}

type controllerKey struct{}

// Controller tracks the runs animating one element.
type Controller struct {
	el     *dom.Element
	owners map[string]*Run
	runs   []*Run
}

// For returns the element's controller, creating it on first use.
func For(el *dom.Element) *Controller {
	if c, ok := el.Data(controllerKey{}).(*Controller); ok {
		return c
	}
	c := &Controller{el: el, owners: make(map[string]*Run)}
	el.SetData(controllerKey{}, c)
	return c
}

// adopt registers r as the owner of its properties. Older runs lose the
// shared properties and are canceled once they drive nothing.
func (c *Controller) adopt(r *Run) {
	for _, p := range r.props {
		prev := c.owners[p.name]
		if prev != nil && prev != r {
			prev.drop(p.name)
			if len(prev.props) == 0 {
				prev.stop()
				c.remove(prev)
			}
		}
		c.owners[p.name] = r
	}
	c.runs = append(c.runs, r)
}

func (c *Controller) release(r *Run) {
	for name, owner := range c.owners {
		if owner == r {
			delete(c.owners, name)
		}
	}
	c.remove(r)
}

func (c *Controller) remove(r *Run) {
	for i, run := range c.runs {
		if run == r {
			c.runs = append(c.runs[:i], c.runs[i+1:]...)
			return
		}
	}
}

// Active returns the runs that have not finished.
func (c *Controller) Active() []*Run {
	out := make([]*Run, len(c.runs))
	copy(out, c.runs)
	return out
}

// Owner returns the run currently driving a property, or nil.
func (c *Controller) Owner(property string) *Run {
	return c.owners[property]
}

// CancelAll cancels every active run on the element.
func (c *Controller) CancelAll() {
	for _, r := range c.Active() {
		r.Cancel()
	}
}
