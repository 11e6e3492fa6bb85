// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/drag.go
// Summary: Pointer gesture state machine for moving, resizing and snapping windows.
// Usage: NewWindow wires pointerDown and hover to the window element.
// Notes: A gesture lives from pointer-down to pointer-up and owns two document
//   listeners for that span. Starting a gesture ends any previous one.

package widget

import (
	"math"

	"github.com/framegrace/sttk/dom"
)

// Mode is the kind of gesture started by a pointer-down.
type Mode int

const (
	ModeNone Mode = iota
	ModeMove
	ModeResizeN
	ModeResizeS
	ModeResizeE
	ModeResizeW
	ModeResizeNE
	ModeResizeNW
	ModeResizeSE
	ModeResizeSW
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeResizeN:
		return "n-resize"
	case ModeResizeS:
		return "s-resize"
	case ModeResizeE:
		return "e-resize"
	case ModeResizeW:
		return "w-resize"
	case ModeResizeNE:
		return "ne-resize"
	case ModeResizeNW:
		return "nw-resize"
	case ModeResizeSE:
		return "se-resize"
	case ModeResizeSW:
		return "sw-resize"
	default:
		return "none"
	}
}

// Cursor returns the cursor shape shown over the mode's hit zone.
func (m Mode) Cursor() string {
	if m == ModeNone {
		return "auto"
	}
	return m.String()
}

// IsResize reports whether the mode changes the window size.
func (m Mode) IsResize() bool {
	return m >= ModeResizeN && m <= ModeResizeSW
}

func (m Mode) movesLeft() bool {
	return m == ModeResizeW || m == ModeResizeNW || m == ModeResizeSW
}

func (m Mode) movesTop() bool {
	return m == ModeResizeN || m == ModeResizeNW || m == ModeResizeNE
}

func (m Mode) growsRight() bool {
	return m == ModeResizeE || m == ModeResizeNE || m == ModeResizeSE
}

func (m Mode) growsDown() bool {
	return m == ModeResizeS || m == ModeResizeSE || m == ModeResizeSW
}

// Classify maps a point relative to the content box origin to a gesture.
// width and height are the content size, borderTop the height of the title
// band above the content. The first matching zone wins: corners, then the
// north band, south, east and west edges, then the move band.
func Classify(ex, ey, width, height, borderTop, margin float64) Mode {
	north := ey < margin-borderTop
	south := ey > height-margin
	east := ex > width-margin
	west := ex < margin
	switch {
	case west && north:
		return ModeResizeNW
	case east && north:
		return ModeResizeNE
	case east && south:
		return ModeResizeSE
	case west && south:
		return ModeResizeSW
	case north:
		return ModeResizeN
	case south:
		return ModeResizeS
	case east:
		return ModeResizeE
	case west:
		return ModeResizeW
	case ey < 0:
		return ModeMove
	}
	return ModeNone
}

type dragSession struct {
	mode Mode

	// pointer and geometry at gesture start; the pointer is clamped to the viewport
	startX, startY float64
	x0, y0         float64
	w0, h0         float64

	// pointer offset from the window origin
	anchorX, anchorY float64

	move dom.ListenerHandle
	up   dom.ListenerHandle
}

type dragController struct {
	w       *Window
	session *dragSession
}

func (d *dragController) viewportClamp(x, y float64) (float64, float64) {
	vw, vh := d.w.el.Document().Viewport()
	return clamp(x, 0, vw), clamp(y, 0, vh)
}

func (d *dragController) pointerDown(ev *dom.Event) {
	w := d.w
	if ev.Target != w.el {
		return
	}
	ex, ey := w.elementPoint(ev.X, ev.Y)
	mode := Classify(ex, ey, w.Width(), w.Height(), w.el.BorderWidths().Top, settings.HitMargin)
	if mode == ModeNone {
		return
	}
	if mode != ModeMove {
		ev.PreventDefault()
	}
	d.end()

	sx, sy := d.viewportClamp(ev.X, ev.Y)
	s := &dragSession{
		mode:   mode,
		startX: sx,
		startY: sy,
		x0:     w.X(),
		y0:     w.Y(),
		w0:     w.Width(),
		h0:     w.Height(),
	}
	s.anchorX = sx - s.x0
	s.anchorY = sy - s.y0

	doc := w.el.Document()
	s.move = doc.AddEventListener(dom.EventMouseMove, d.pointerMove)
	s.up = doc.AddEventListener(dom.EventMouseUp, d.pointerUp)
	d.session = s
	verbosef("Window: %s gesture on %s at (%.0f,%.0f)", mode, w.el.ID(), sx, sy)
}

func (d *dragController) pointerMove(ev *dom.Event) {
	s := d.session
	if s == nil {
		return
	}
	w := d.w
	floor := settings.MinSize
	x, y := d.viewportClamp(ev.X, ev.Y)

	if s.mode == ModeMove {
		if w.maximizing() {
			w.SetMaximized(false)
			s.anchorX = w.Stored("--width") / 2
		}
		w.SetX(x - s.anchorX)
		w.SetY(y - s.anchorY)
		return
	}

	if s.mode.movesLeft() {
		w.SetX(math.Min(x-s.anchorX, w.X()+w.Width()-floor))
	}
	if s.mode.movesTop() {
		w.SetY(math.Min(y-s.anchorY, w.Y()+w.Height()-floor))
	}
	switch {
	case s.mode.movesLeft():
		w.SetWidth(math.Max(floor, s.w0+s.startX-x))
	case s.mode.growsRight():
		w.SetWidth(math.Max(floor, s.w0+x-s.startX))
	}
	switch {
	case s.mode.movesTop():
		w.SetHeight(math.Max(floor, s.h0+s.startY-y))
	case s.mode.growsDown():
		w.SetHeight(math.Max(floor, s.h0+y-s.startY))
	}
}

func (d *dragController) pointerUp(ev *dom.Event) {
	s := d.session
	if s == nil {
		return
	}
	d.end()
	verbosef("Window: %s gesture on %s ended at (%.0f,%.0f)", s.mode, d.w.el.ID(), ev.X, ev.Y)
	if s.mode == ModeMove && ev.Y < settings.SnapZone {
		d.w.SetMaximized(true)
	}
}

// end removes the gesture listeners, if any.
func (d *dragController) end() {
	s := d.session
	if s == nil {
		return
	}
	s.move.Remove()
	s.up.Remove()
	d.session = nil
}

// hover updates the cursor while no gesture is active.
func (d *dragController) hover(ev *dom.Event) {
	if d.session != nil {
		return
	}
	w := d.w
	if ev.Target != w.el {
		w.el.SetStyle("cursor", "auto")
		return
	}
	ex, ey := w.elementPoint(ev.X, ev.Y)
	cursor := "auto"
	if ey < 0 {
		cursor = "move"
	}
	if !w.Maximized() {
		mode := Classify(ex, ey, w.Width(), w.Height(), w.el.BorderWidths().Top, settings.HitMargin)
		if mode.IsResize() {
			cursor = mode.Cursor()
		}
	}
	w.el.SetStyle("cursor", cursor)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
