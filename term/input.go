// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/input.go
// Summary: Translates tcell mouse, key and resize events into document events.
// Notes: Pointer coordinates are cell centres in px. A click follows a
//   primary release over the still-mounted element that received the press,
//   which is tracked by element ID.

package term

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/sttk/dom"
)

// HandleEvent feeds one screen event into the document. It reports whether
// the event was understood.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		h.handleMouse(tev)
		return true
	case *tcell.EventKey:
		return h.handleKey(tev)
	case *tcell.EventResize:
		cols, rows := tev.Size()
		h.resize(cols, rows)
		return true
	}
	return false
}

// mouseButtons maps tcell buttons to DOM button numbers.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button int
}{
	{tcell.Button1, 0},
	{tcell.Button3, 1},
	{tcell.Button2, 2},
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x := (float64(cx) + 0.5) * h.opts.CellWidth
	y := (float64(cy) + 0.5) * h.opts.CellHeight

	if !h.havePointer || x != h.pointerX || y != h.pointerY {
		h.pointerX, h.pointerY, h.havePointer = x, y, true
		h.doc.Dispatch(&dom.Event{Type: dom.EventMouseMove, X: x, Y: y})
	}

	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := buttons &^ h.buttons
	released := h.buttons &^ buttons
	h.buttons = buttons

	for _, b := range mouseButtons {
		if pressed&b.mask == 0 {
			continue
		}
		down := &dom.Event{Type: dom.EventMouseDown, X: x, Y: y, Button: b.button}
		h.doc.Dispatch(down)
		if b.button == 0 && down.Target != nil {
			h.pressTarget = down.Target.ID()
		}
	}
	for _, b := range mouseButtons {
		if released&b.mask == 0 {
			continue
		}
		up := &dom.Event{Type: dom.EventMouseUp, X: x, Y: y, Button: b.button}
		h.doc.Dispatch(up)
		if b.button != 0 {
			continue
		}
		// the pressed element may have been unmounted since
		if target := h.doc.ElementByID(h.pressTarget); target != nil && target == up.Target {
			h.doc.Dispatch(&dom.Event{Type: dom.EventClick, X: x, Y: y, Target: target})
		}
		h.pressTarget = ""
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	if h.filter != nil && h.filter(ev) {
		return true
	}
	code, key := keyCode(ev)
	if code == "" {
		return false
	}
	down := &dom.Event{Type: dom.EventKeyDown, Code: code, Key: key}
	h.doc.Dispatch(down)
	if key != 0 {
		h.doc.Dispatch(&dom.Event{Type: dom.EventKeyPress, Code: code, Key: key})
	}
	h.doc.Dispatch(&dom.Event{Type: dom.EventKeyUp, Code: code, Key: key})
	if code == dom.CodeTab && !down.DefaultPrevented() {
		h.cycleFocus(ev.Key() != tcell.KeyBacktab)
	}
	return true
}

// keyCode names the key and, for printable keys, the produced character.
func keyCode(ev *tcell.EventKey) (string, rune) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			return "Space", r
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			return "Key" + strings.ToUpper(string(r)), r
		case unicode.IsDigit(r):
			return "Digit" + string(r), r
		case unicode.IsPrint(r):
			return string(r), r
		}
		return "", 0
	case tcell.KeyEnter:
		return dom.CodeEnter, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return dom.CodeBackspace, 0
	case tcell.KeyEscape:
		return dom.CodeEscape, 0
	case tcell.KeyTab, tcell.KeyBacktab:
		return dom.CodeTab, 0
	}
	return "", 0
}

// cycleFocus moves focus to the next (or previous) focusable element in
// tree order, wrapping around.
func (h *Host) cycleFocus(forward bool) {
	var order []*dom.Element
	h.doc.Walk(func(e *dom.Element, depth int) {
		if depth > 0 && e.Focusable() {
			order = append(order, e)
		}
	})
	if len(order) == 0 {
		return
	}
	step := 1
	next := order[0]
	if !forward {
		step = len(order) - 1
		next = order[len(order)-1]
	}
	current := h.doc.Focused()
	for i, e := range order {
		if e == current {
			next = order[(i+step)%len(order)]
			break
		}
	}
	next.Focus()
}
