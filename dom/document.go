// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/document.go
// Summary: Host document: viewport, body, stylesheet and event dispatch.
// Usage: One Document per host surface; widgets create their elements from it.
// Notes: Not safe for concurrent use; all access happens on the event loop.

package dom

import (
	"github.com/google/uuid"

	"github.com/framegrace/sttk/eventloop"
)

// Rule is a class selector with its declarations.
type Rule struct {
	Class string
	Decls map[string]string
}

// Document owns the element tree rooted at Body.
type Document struct {
	sched    eventloop.Scheduler
	width    float64
	height   float64
	body     *Element
	rules    []Rule
	handlers listenerList
	focused  *Element
	line     float64
}

// NewDocument creates a document with the given viewport size in px.
func NewDocument(sched eventloop.Scheduler, width, height float64) *Document {
	d := &Document{sched: sched, width: width, height: height}
	d.body = d.CreateElement("body")
	return d
}

// Scheduler returns the loop that owns the document.
func (d *Document) Scheduler() eventloop.Scheduler { return d.sched }

// Viewport returns the viewport size in px.
func (d *Document) Viewport() (float64, float64) { return d.width, d.height }

// SetViewport resizes the viewport.
func (d *Document) SetViewport(width, height float64) {
	d.width, d.height = width, height
}

// Body returns the root element.
func (d *Document) Body() *Element { return d.body }

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		id:  uuid.NewString(),
		tag: tag,
		doc: d,
	}
}

// ElementByID returns the mounted element with the given ID, or nil when no
// element under Body carries it.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.Walk(func(e *Element, _ int) {
		if found == nil && e.id == id {
			found = e
		}
	})
	return found
}

// AddRule appends a class rule. Later rules win over earlier ones.
func (d *Document) AddRule(class string, decls map[string]string) {
	copied := make(map[string]string, len(decls))
	for k, v := range decls {
		copied[k] = v
	}
	d.rules = append(d.rules, Rule{Class: class, Decls: copied})
}

// HasRule reports whether a rule for the class exists.
func (d *Document) HasRule(class string) bool {
	for _, r := range d.rules {
		if r.Class == class {
			return true
		}
	}
	return false
}

// AddEventListener registers a document-level listener. Document listeners
// run after the event has bubbled through the element path.
func (d *Document) AddEventListener(t EventType, fn Listener) ListenerHandle {
	return d.handlers.add(t, fn)
}

// ListenerCount reports document-level listeners of type t.
func (d *Document) ListenerCount(t EventType) int {
	return d.handlers.count(t)
}

// Focused returns the element holding keyboard focus.
func (d *Document) Focused() *Element { return d.focused }

// Dispatch delivers ev. Pointer events without a target are hit-tested;
// key events go to the focused element, or the body.
func (d *Document) Dispatch(ev *Event) {
	if ev == nil || ev.Type == EventSynthetic {
		return
	}
	if ev.Target == nil {
		if ev.Type.IsPointer() {
			ev.Target = d.ElementAt(ev.X, ev.Y)
		} else {
			ev.Target = d.focused
		}
	}
	if ev.Target == nil {
		ev.Target = d.body
	}

	var path []*Element
	for n := ev.Target; n != nil; n = n.parent {
		path = append(path, n)
	}
	for _, n := range path {
		if ev.stopped {
			break
		}
		ev.CurrentTarget = n
		n.listeners.fire(ev)
	}
	if !ev.stopped {
		ev.CurrentTarget = nil
		d.handlers.fire(ev)
	}
	ev.CurrentTarget = nil

	if !ev.defaultPrevented {
		d.defaultAction(ev)
	}
}

func (d *Document) defaultAction(ev *Event) {
	switch ev.Type {
	case EventMouseDown:
		for n := ev.Target; n != nil; n = n.parent {
			if n.Focusable() {
				d.focused = n
				return
			}
		}
	case EventKeyPress:
		if t := ev.Target; t != nil && t.tag == "input" && ev.Key != 0 {
			t.SetValue(t.Value() + string(ev.Key))
		}
	case EventKeyDown:
		if t := ev.Target; t != nil && t.tag == "input" && ev.Code == CodeBackspace {
			v := []rune(t.Value())
			if len(v) > 0 {
				t.SetValue(string(v[:len(v)-1]))
			}
		}
	}
}

// ElementAt returns the topmost mounted element whose border box contains
// the point. Later siblings paint over earlier ones.
func (d *Document) ElementAt(x, y float64) *Element {
	return d.hit(d.body, x, y)
}

func (d *Document) hit(e *Element, x, y float64) *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		c := e.children[i]
		if c.ComputedStyle("pointer-events") == "none" {
			continue
		}
		if found := d.hit(c, x, y); found != nil {
			return found
		}
	}
	if e == d.body {
		return d.body
	}
	if e.Bounds().Contains(x, y) {
		return e
	}
	return nil
}

// Walk visits mounted elements in paint order (parents before children).
func (d *Document) Walk(fn func(e *Element, depth int)) {
	var visit func(e *Element, depth int)
	visit = func(e *Element, depth int) {
		fn(e, depth)
		for _, c := range e.children {
			visit(c, depth+1)
		}
	}
	visit(d.body, 0)
}
