// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/signal.go
// Summary: Signal names, widget events and the adapter tables mapping native events to signals.
// Usage: Widgets build a Table at construction; Connect/Trigger route through it.
// Notes: The dom.EventSynthetic key holds the adapter used by Trigger.

package widget

import "github.com/framegrace/sttk/dom"

// Signal is an abstract widget event.
type Signal int

const (
	SignalActivate Signal = iota
	SignalMousePress
	SignalMouseRelease
	SignalClick
	SignalKeyPress
	SignalKeyRelease
	SignalType
	SignalMove
	SignalResize
	SignalConfirm
)

var signalNames = map[Signal]string{
	SignalActivate:     "activate",
	SignalMousePress:   "mousePress",
	SignalMouseRelease: "mouseRelease",
	SignalClick:        "click",
	SignalKeyPress:     "keyPress",
	SignalKeyRelease:   "keyRelease",
	SignalType:         "type",
	SignalMove:         "move",
	SignalResize:       "resize",
	SignalConfirm:      "confirm",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSignal returns the signal with the given name.
func ParseSignal(name string) (Signal, bool) {
	for s, n := range signalNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Event is what connected callbacks receive. Native is nil for triggered
// signals. Window geometry fields are filled by the move and resize
// adapters.
type Event struct {
	Native *dom.Event
	Widget Interface

	WindowX      float64
	WindowY      float64
	WindowWidth  float64
	WindowHeight float64
}

// Callback is a connected signal handler.
type Callback func(ev *Event)

// Adapter turns one event occurrence into a callback invocation.
type Adapter func(cb Callback, ev *Event)

// Table maps each signal to its adapters keyed by native event type.
type Table map[Signal]map[dom.EventType]Adapter

// Forward passes the event through unchanged.
func Forward(cb Callback, ev *Event) { cb(ev) }

// OnEnter forwards keydown events for the Enter key only.
func OnEnter(cb Callback, ev *Event) {
	if ev.Native != nil && ev.Native.Code == dom.CodeEnter {
		cb(ev)
	}
}

// DefaultTable returns the signals every widget carries.
func DefaultTable() Table {
	return Table{
		SignalActivate: {
			dom.EventClick:   Forward,
			dom.EventKeyDown: OnEnter,
		},
		SignalMousePress: {
			dom.EventSynthetic: Forward,
			dom.EventMouseDown: Forward,
		},
		SignalMouseRelease: {
			dom.EventSynthetic: Forward,
			dom.EventMouseUp:   Forward,
		},
		SignalClick: {
			dom.EventSynthetic: Forward,
			dom.EventClick:     Forward,
		},
		SignalKeyPress: {
			dom.EventSynthetic: Forward,
			dom.EventKeyDown:   Forward,
		},
		SignalKeyRelease: {
			dom.EventSynthetic: Forward,
			dom.EventKeyUp:     Forward,
		},
		SignalType: {
			dom.EventSynthetic: Forward,
			dom.EventKeyPress:  Forward,
		},
	}
}

// extend overlays extra on t. An entry replaces the inherited entry for the
// same signal as a whole.
func (t Table) extend(extra Table) {
	for sig, adapters := range extra {
		copied := make(map[dom.EventType]Adapter, len(adapters))
		for k, v := range adapters {
			copied[k] = v
		}
		t[sig] = copied
	}
}

// nativeTypes is the union of native event types present in the table, in
// dom.NativeEventTypes order.
func (t Table) nativeTypes() []dom.EventType {
	var out []dom.EventType
	for _, et := range dom.NativeEventTypes {
		for _, adapters := range t {
			if _, ok := adapters[et]; ok {
				out = append(out, et)
				break
			}
		}
	}
	return out
}
