// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/widget.go
// Summary: Base widget: one owned element, a signal table and connected callbacks.
// Usage: Concrete widgets embed *Widget and pass extra signals to newWidget.
// Notes: Listeners are registered once per native event type in the table.

package widget

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/framegrace/sttk/dom"
)

var verboseLogging atomic.Bool

// SetVerboseLogging toggles per-gesture and per-signal logs.
func SetVerboseLogging(enabled bool) {
	verboseLogging.Store(enabled)
}

func verbosef(format string, args ...interface{}) {
	if verboseLogging.Load() {
		log.Printf(format, args...)
	}
}

// Interface is implemented by every widget.
type Interface interface {
	Element() *dom.Element
	Connect(sig Signal, cb Callback)
	Trigger(sig Signal, ev *Event)
	Show(parent *dom.Element) error
	ShowAll(parent *dom.Element) error
}

// Props configures a widget at construction. Recognised keys are applied
// through the widget's setters in key order; other keys are kept as own
// properties readable with Prop.
type Props map[string]any

// Widget owns one element and routes its events to connected callbacks.
type Widget struct {
	el        *dom.Element
	self      Interface
	signals   Table
	connected map[Signal][]Callback
	order     []Signal
	handles   []dom.ListenerHandle
	props     map[string]any
	setter    func(key string, value any) bool
}

// New wraps el in a plain widget carrying the default signals plus extra.
func New(el *dom.Element, extra Table) *Widget {
	w := newWidget(el, extra)
	w.self = w
	return w
}

func newWidget(el *dom.Element, extra Table) *Widget {
	w := &Widget{
		el:        el,
		signals:   DefaultTable(),
		connected: make(map[Signal][]Callback),
		props:     make(map[string]any),
	}
	w.signals.extend(extra)
	el.SetAttr("tabindex", "0")
	for _, et := range w.signals.nativeTypes() {
		w.handles = append(w.handles, el.AddEventListener(et, w.dispatch))
	}
	return w
}

// bind sets the outer widget stamped on events and the property setter.
func (w *Widget) bind(self Interface, setter func(key string, value any) bool) {
	w.self = self
	w.setter = setter
}

// Element returns the owned host element.
func (w *Widget) Element() *dom.Element { return w.el }

// Signals lists the signals in the widget's table.
func (w *Widget) Signals() []Signal {
	out := make([]Signal, 0, len(w.signals))
	for sig := range w.signals {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ListenedTypes lists the native event types the widget listens to.
func (w *Widget) ListenedTypes() []dom.EventType {
	return w.signals.nativeTypes()
}

// Connect appends cb to the signal's callbacks. Signals missing from the
// table never fire.
func (w *Widget) Connect(sig Signal, cb Callback) {
	if cb == nil {
		return
	}
	if _, ok := w.connected[sig]; !ok {
		w.order = append(w.order, sig)
	}
	w.connected[sig] = append(w.connected[sig], cb)
}

// Connections reports how many callbacks are connected to sig.
func (w *Widget) Connections(sig Signal) int {
	return len(w.connected[sig])
}

// Trigger invokes the signal's callbacks through its synthetic adapter.
// Signals without one are inert.
func (w *Widget) Trigger(sig Signal, ev *Event) {
	callbacks := w.connected[sig]
	if len(callbacks) == 0 {
		return
	}
	adapter := w.signals[sig][dom.EventSynthetic]
	if adapter == nil {
		return
	}
	if ev == nil {
		ev = &Event{}
	}
	ev.Widget = w.self
	verbosef("Widget: trigger %s on %s (%d callbacks)", sig, w.el.ID(), len(callbacks))
	for _, cb := range callbacks {
		adapter(cb, ev)
	}
}

func (w *Widget) dispatch(native *dom.Event) {
	if len(w.order) == 0 {
		return
	}
	ev := &Event{Native: native, Widget: w.self}
	for _, sig := range w.order {
		adapter := w.signals[sig][native.Type]
		if adapter == nil {
			continue
		}
		for _, cb := range w.connected[sig] {
			adapter(cb, ev)
		}
	}
}

// Show mounts the element under parent.
func (w *Widget) Show(parent *dom.Element) error {
	if parent == nil {
		return fmt.Errorf("widget: show: %w", dom.ErrHierarchy)
	}
	return parent.AppendChild(w.el)
}

// ShowAll mounts the widget; leaves have nothing else to show.
func (w *Widget) ShowAll(parent *dom.Element) error {
	return w.Show(parent)
}

// Set assigns a property through the widget's setter, or stores it as an
// own property when the widget does not recognise the key.
func (w *Widget) Set(key string, value any) {
	if w.setter != nil && w.setter(key, value) {
		return
	}
	w.props[key] = value
}

// Prop returns an own property stored by Set or construction.
func (w *Widget) Prop(key string) (any, bool) {
	v, ok := w.props[key]
	return v, ok
}

func (w *Widget) apply(props Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.Set(k, props[k])
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	}
	return false, false
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
