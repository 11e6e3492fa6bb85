// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"testing"

	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/eventloop"
)

func newTestDoc() (*dom.Document, *eventloop.Manual) {
	clock := eventloop.NewManual()
	return dom.NewDocument(clock, 800, 600), clock
}

func TestTriggerRunsCallbacksInOrder(t *testing.T) {
	doc, _ := newTestDoc()
	b := NewButton(doc, nil)

	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		b.Connect(SignalClick, func(ev *Event) {
			if ev.Widget != Interface(b) {
				t.Errorf("event not stamped with the widget")
			}
			got = append(got, i)
		})
	}
	b.Trigger(SignalClick, nil)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("callbacks = %v, want [1 2 3]", got)
	}
}

func TestTriggerWithoutSyntheticAdapterIsInert(t *testing.T) {
	doc, _ := newTestDoc()
	b := NewButton(doc, nil)
	calls := 0
	b.Connect(SignalActivate, func(*Event) { calls++ })
	b.Trigger(SignalActivate, nil)
	b.Trigger(SignalConfirm, nil)
	if calls != 0 {
		t.Fatalf("activate fired %d times from Trigger", calls)
	}
}

func TestConnectDoesNotDeduplicate(t *testing.T) {
	doc, _ := newTestDoc()
	l := NewLabel(doc, nil)
	calls := 0
	cb := func(*Event) { calls++ }
	l.Connect(SignalType, cb)
	l.Connect(SignalType, cb)
	l.Trigger(SignalType, nil)
	if calls != 2 || l.Connections(SignalType) != 2 {
		t.Fatalf("calls = %d connections = %d", calls, l.Connections(SignalType))
	}
}

func TestNativeEventsReachConnectedSignals(t *testing.T) {
	doc, _ := newTestDoc()
	b := NewButton(doc, Props{"text": "OK"})
	if err := b.Show(doc.Body()); err != nil {
		t.Fatal(err)
	}

	var order []string
	b.Connect(SignalClick, func(ev *Event) {
		if ev.Native == nil || ev.Native.Type != dom.EventClick {
			t.Errorf("click signal without native click")
		}
		order = append(order, "click")
	})
	b.Connect(SignalActivate, func(*Event) { order = append(order, "activate") })
	b.Connect(SignalMousePress, func(*Event) { order = append(order, "press") })

	doc.Dispatch(&dom.Event{Type: dom.EventClick, X: 5, Y: 5})
	if len(order) != 2 || order[0] != "click" || order[1] != "activate" {
		t.Fatalf("order = %v, want [click activate]", order)
	}

	order = nil
	b.Element().Focus()
	doc.Dispatch(&dom.Event{Type: dom.EventKeyDown, Code: "KeyA"})
	doc.Dispatch(&dom.Event{Type: dom.EventKeyDown, Code: dom.CodeEnter})
	if len(order) != 1 || order[0] != "activate" {
		t.Fatalf("order = %v, want [activate]", order)
	}
}

func TestListenersCoverOnlyTableTypes(t *testing.T) {
	doc, _ := newTestDoc()
	b := NewButton(doc, nil)
	el := b.Element()
	if n := el.ListenerCount(dom.EventMouseMove); n != 0 {
		t.Fatalf("mousemove listeners = %d, want 0", n)
	}
	for _, et := range []dom.EventType{dom.EventClick, dom.EventMouseDown, dom.EventMouseUp, dom.EventKeyDown, dom.EventKeyUp, dom.EventKeyPress} {
		if n := el.ListenerCount(et); n != 1 {
			t.Fatalf("%s listeners = %d, want 1", et, n)
		}
	}
	if el.Attr("tabindex") != "0" {
		t.Fatalf("widget element not focusable")
	}
}

func TestExtraSignalsReplaceInheritedEntries(t *testing.T) {
	doc, _ := newTestDoc()
	el := doc.CreateElement("div")
	w := New(el, Table{SignalClick: {dom.EventMouseUp: Forward}})
	if err := w.Show(doc.Body()); err != nil {
		t.Fatal(err)
	}
	calls := 0
	w.Connect(SignalClick, func(*Event) { calls++ })

	w.Trigger(SignalClick, nil)
	doc.Dispatch(&dom.Event{Type: dom.EventClick, X: 1, Y: 1})
	if calls != 0 {
		t.Fatalf("replaced adapters still fired %d times", calls)
	}
	doc.Dispatch(&dom.Event{Type: dom.EventMouseUp, X: 1, Y: 1})
	if calls != 1 {
		t.Fatalf("mouseup adapter fired %d times, want 1", calls)
	}
}

func TestEntryConfirmAndEditing(t *testing.T) {
	doc, _ := newTestDoc()
	e := NewEntry(doc, Props{"placeholder": "name"})
	if err := e.ShowAll(doc.Body()); err != nil {
		t.Fatal(err)
	}
	confirmed := 0
	typed := 0
	e.Connect(SignalConfirm, func(*Event) { confirmed++ })
	e.Connect(SignalType, func(*Event) { typed++ })

	e.Element().Focus()
	for _, r := range "hi!" {
		doc.Dispatch(&dom.Event{Type: dom.EventKeyPress, Key: r})
	}
	doc.Dispatch(&dom.Event{Type: dom.EventKeyDown, Code: dom.CodeBackspace})
	doc.Dispatch(&dom.Event{Type: dom.EventKeyDown, Code: dom.CodeEnter})

	if e.Text() != "hi" {
		t.Fatalf("text = %q, want hi", e.Text())
	}
	if confirmed != 1 || typed != 3 {
		t.Fatalf("confirmed = %d typed = %d", confirmed, typed)
	}
	if e.Placeholder() != "name" || e.Element().Attr("type") != "text" {
		t.Fatalf("entry attributes not set")
	}
}

func TestPropsUnknownKeysAreKept(t *testing.T) {
	doc, _ := newTestDoc()
	l := NewLabel(doc, Props{"text": "hello", "tooltip": "extra", "selectable": true})
	if l.Text() != "hello" {
		t.Fatalf("text = %q", l.Text())
	}
	if v, ok := l.Prop("tooltip"); !ok || v != "extra" {
		t.Fatalf("tooltip = %v, %v", v, ok)
	}
	if _, ok := l.Prop("text"); ok {
		t.Fatalf("recognised key stored as own property")
	}
	if !l.Selectable() {
		t.Fatalf("selectable prop not applied")
	}
}

func TestLabelAndButtonContent(t *testing.T) {
	doc, _ := newTestDoc()
	l := NewLabel(doc, nil)
	if l.Selectable() {
		t.Fatalf("labels start unselectable")
	}
	l.SetHTML("<b>bold</b>")
	if l.Text() != "bold" || l.HTML() != "<b>bold</b>" {
		t.Fatalf("label text=%q html=%q", l.Text(), l.HTML())
	}
	b := NewButton(doc, Props{"html": "<i>go</i>"})
	if b.Text() != "go" {
		t.Fatalf("button text = %q", b.Text())
	}
	b.SetText("stop")
	if b.HTML() != "stop" {
		t.Fatalf("button html = %q", b.HTML())
	}
}

func TestParseSignal(t *testing.T) {
	for _, sig := range []Signal{SignalActivate, SignalMove, SignalResize, SignalConfirm, SignalType} {
		got, ok := ParseSignal(sig.String())
		if !ok || got != sig {
			t.Fatalf("ParseSignal(%q) = %v, %v", sig.String(), got, ok)
		}
	}
	if _, ok := ParseSignal("nope"); ok {
		t.Fatalf("unknown signal parsed")
	}
}
