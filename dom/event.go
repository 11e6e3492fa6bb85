// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/event.go
// Summary: Native event types, event payloads and removable listener handles.
// Usage: Hosts feed Events into Document.Dispatch; widgets listen per element.

package dom

// EventType identifies a native event. EventSynthetic is reserved for
// manually triggered signals and is never dispatched by the document.
type EventType int

const (
	EventSynthetic EventType = iota
	EventClick
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventKeyDown
	EventKeyUp
	EventKeyPress
)

// NativeEventTypes lists every type the document can dispatch.
var NativeEventTypes = []EventType{
	EventClick,
	EventMouseDown,
	EventMouseUp,
	EventMouseMove,
	EventKeyDown,
	EventKeyUp,
	EventKeyPress,
}

// String returns the host name of the event type.
func (t EventType) String() string {
	switch t {
	case EventSynthetic:
		return ""
	case EventClick:
		return "click"
	case EventMouseDown:
		return "mousedown"
	case EventMouseUp:
		return "mouseup"
	case EventMouseMove:
		return "mousemove"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventKeyPress:
		return "keypress"
	default:
		return "unknown"
	}
}

// IsPointer reports whether the event is positioned by pointer coordinates.
func (t EventType) IsPointer() bool {
	switch t {
	case EventClick, EventMouseDown, EventMouseUp, EventMouseMove:
		return true
	}
	return false
}

// Key codes used by the toolkit.
const (
	CodeEnter     = "Enter"
	CodeBackspace = "Backspace"
	CodeEscape    = "Escape"
	CodeTab       = "Tab"
)

// Event is one native event occurrence.
type Event struct {
	Type EventType
	// X and Y are client (viewport) coordinates in px.
	X, Y   float64
	Button int
	// Code names the physical key ("Enter", "Backspace", "KeyA").
	Code string
	// Key is the produced character for keypress events.
	Key rune

	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the document's default action (focus, text edit).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops bubbling past the current element.
func (e *Event) StopPropagation() { e.stopped = true }

// Listener receives dispatched events.
type Listener func(ev *Event)

type listener struct {
	fn      Listener
	removed bool
}

// ListenerHandle removes a registered listener. The zero value is inert.
type ListenerHandle struct {
	l    *listener
	list *listenerList
	t    EventType
}

// Remove unregisters the listener. Calling it more than once is harmless.
func (h ListenerHandle) Remove() {
	if h.l == nil || h.list == nil || h.l.removed {
		return
	}
	h.l.removed = true
	h.list.remove(h.t, h.l)
}

// Active reports whether the listener is still registered.
func (h ListenerHandle) Active() bool {
	return h.l != nil && !h.l.removed
}

type listenerList struct {
	byType map[EventType][]*listener
}

func (ll *listenerList) add(t EventType, fn Listener) ListenerHandle {
	if ll.byType == nil {
		ll.byType = make(map[EventType][]*listener)
	}
	l := &listener{fn: fn}
	ll.byType[t] = append(ll.byType[t], l)
	return ListenerHandle{l: l, list: ll, t: t}
}

func (ll *listenerList) remove(t EventType, target *listener) {
	list := ll.byType[t]
	for i, l := range list {
		if l == target {
			out := make([]*listener, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			ll.byType[t] = out
			return
		}
	}
}

func (ll *listenerList) count(t EventType) int {
	return len(ll.byType[t])
}

// fire invokes a snapshot of the listeners so handlers may add or remove
// listeners while running.
func (ll *listenerList) fire(ev *Event) {
	list := ll.byType[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(ev)
	}
}
