// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/window.go
// Summary: Draggable, resizable, maximizable window surface.
// Usage: w := NewWindow(doc, Props{"title": "Demo", "x": 40, "y": 40, "width": 320, "height": 200}).
// Notes: Geometry is stored in the --x/--y/--width/--height custom properties and
//   always read back from the resolved style. The maximized class marker only
//   changes when the maximize transition completes.

package widget

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/framegrace/sttk/anim"
	"github.com/framegrace/sttk/dom"
)

// Window is a top-level surface with a title band and one child widget.
type Window struct {
	*Widget

	title       *dom.Element
	closeButton *dom.Element
	child       Interface
	drag        dragController

	maxRun    *anim.Run
	maxTarget bool
}

// NewWindow builds a detached window. Recognised props: title, x, y, width,
// height, maximized and child.
func NewWindow(doc *dom.Document, props Props) *Window {
	InstallStyles(doc)
	el := doc.CreateElement("div")
	w := &Window{}
	w.Widget = newWidget(el, Table{
		SignalMove: {
			dom.EventSynthetic: func(cb Callback, ev *Event) {
				ev.WindowX = w.X()
				ev.WindowY = w.Y()
				cb(ev)
			},
		},
		SignalResize: {
			dom.EventSynthetic: func(cb Callback, ev *Event) {
				ev.WindowWidth = w.Width()
				ev.WindowHeight = w.Height()
				cb(ev)
			},
		},
	})
	w.bind(w, w.setProp)
	w.drag.w = w

	el.AddClass(ClassWindow)
	height := settings.MinSize
	if h, ok := toFloat(props["height"]); ok && h > height {
		height = h
	}
	el.SetStyle("opacity", "0")
	el.SetStyle("transform", "matrix(0.75, 0, 0, 0.75, 0, "+strconv.FormatFloat(0.25*height, 'f', -1, 64)+")")

	w.title = doc.CreateElement("div")
	w.title.AddClass(ClassTitle)
	w.closeButton = doc.CreateElement("div")
	w.closeButton.AddClass(ClassCloseButton)
	w.closeButton.SetText("×")
	_ = el.AppendChild(w.title)
	_ = el.AppendChild(w.closeButton)
	w.closeButton.AddEventListener(dom.EventClick, func(*dom.Event) { w.Close() })

	el.AddEventListener(dom.EventMouseDown, w.drag.pointerDown)
	el.AddEventListener(dom.EventMouseMove, w.drag.hover)

	w.apply(props)
	return w
}

func (w *Window) setProp(key string, value any) bool {
	switch key {
	case "title":
		if s, ok := toString(value); ok {
			w.SetTitle(s)
			return true
		}
	case "x", "y", "width", "height":
		v, ok := toFloat(value)
		if !ok {
			return false
		}
		switch key {
		case "x":
			w.SetX(v)
		case "y":
			w.SetY(v)
		case "width":
			w.SetWidth(v)
		case "height":
			w.SetHeight(v)
		}
		return true
	case "maximized":
		if b, ok := toBool(value); ok {
			w.SetMaximized(b)
			return true
		}
	case "child":
		if c, ok := value.(Interface); ok {
			w.SetChild(c)
			return true
		}
	}
	return false
}

// X returns the resolved left edge in px.
func (w *Window) X() float64 { return w.el.Length("left") }

// Y returns the resolved top edge in px.
func (w *Window) Y() float64 { return w.el.Length("top") }

// Width returns the resolved content width in px.
func (w *Window) Width() float64 { return w.el.Length("width") }

// Height returns the resolved content height in px.
func (w *Window) Height() float64 { return w.el.Length("height") }

// SetX stores x, fires move and returns the resolved left edge.
func (w *Window) SetX(x float64) float64 {
	w.el.SetStyle("--x", px(x))
	w.Trigger(SignalMove, nil)
	return w.X()
}

// SetY stores y, fires move and returns the resolved top edge.
func (w *Window) SetY(y float64) float64 {
	w.el.SetStyle("--y", px(y))
	w.Trigger(SignalMove, nil)
	return w.Y()
}

// SetWidth stores width, fires resize and returns the resolved width.
func (w *Window) SetWidth(width float64) float64 {
	w.el.SetStyle("--width", px(width))
	w.Trigger(SignalResize, nil)
	return w.Width()
}

// SetHeight stores height, fires resize and returns the resolved height.
func (w *Window) SetHeight(height float64) float64 {
	w.el.SetStyle("--height", px(height))
	w.Trigger(SignalResize, nil)
	return w.Height()
}

// Stored returns the value of a geometry channel ("--x", "--width", ...)
// as written, independent of any maximize transition.
func (w *Window) Stored(channel string) float64 {
	raw := strings.TrimSpace(w.el.Style(channel))
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
	if err != nil {
		return 0
	}
	return v
}

// Title returns the title markup.
func (w *Window) Title() string { return w.title.HTML() }

// SetTitle replaces the title markup.
func (w *Window) SetTitle(title string) {
	w.title.SetHTML(title)
}

// TitleElement returns the element holding the title.
func (w *Window) TitleElement() *dom.Element { return w.title }

// CloseButton returns the close button element.
func (w *Window) CloseButton() *dom.Element { return w.closeButton }

// Maximized reports the class marker, which changes only when a maximize
// transition completes.
func (w *Window) Maximized() bool {
	return w.el.HasClass(ClassMaximized)
}

// maximizing returns the state the window is heading to.
func (w *Window) maximizing() bool {
	if w.maxRun != nil && !w.maxRun.Done() {
		return w.maxTarget
	}
	return w.Maximized()
}

// SetMaximized animates between the stored geometry and full viewport
// coverage. Requesting the state the window is already in or heading to
// does nothing.
func (w *Window) SetMaximized(maximized bool) {
	if w.maximizing() == maximized {
		return
	}
	w.maxTarget = maximized
	s := settings
	if maximized {
		verbosef("Window: maximize %s", w.el.ID())
		w.maxRun = anim.Animate(w.el, anim.Styles{
			"left":   "0px",
			"top":    "0px",
			"width":  "100vw",
			"height": "100vh",
		}, s.MaximizeDuration, s.Easing, func(el *dom.Element) { el.AddClass(ClassMaximized) })
		return
	}
	verbosef("Window: restore %s", w.el.ID())
	w.maxRun = anim.Animate(w.el, anim.Styles{
		"left":   "var(--x)",
		"top":    "var(--y)",
		"width":  "var(--width)",
		"height": "var(--height)",
	}, s.MaximizeDuration, s.Easing, func(el *dom.Element) { el.RemoveClass(ClassMaximized) })
}

// Child returns the content widget.
func (w *Window) Child() Interface { return w.child }

// SetChild sets the content widget shown by ShowAll.
func (w *Window) SetChild(child Interface) { w.child = child }

// Show mounts the window, floors its size and plays the entrance animation.
func (w *Window) Show(parent *dom.Element) error {
	if err := w.Widget.Show(parent); err != nil {
		return err
	}
	s := settings
	w.SetWidth(math.Max(s.MinSize, w.Width()))
	w.SetHeight(math.Max(s.MinSize, w.Height()))
	anim.Animate(w.el, anim.Styles{
		"opacity":   "1",
		"transform": "matrix(1, 0, 0, 1, 0, 0)",
	}, s.ShowDuration, s.Easing, nil)
	return nil
}

// ShowAll shows the window and then its child inside it.
func (w *Window) ShowAll(parent *dom.Element) error {
	if err := w.Show(parent); err != nil {
		return err
	}
	if w.child != nil {
		return w.child.ShowAll(w.el)
	}
	return nil
}

// Close ends any gesture, plays the exit animation and unmounts.
func (w *Window) Close() {
	w.drag.end()
	s := settings
	anim.Animate(w.el, anim.Styles{
		"opacity":   "0",
		"transform": "matrix(0.75, 0, 0, 0.75, 0, 0)",
	}, s.ShowDuration, s.Easing, func(el *dom.Element) {
		el.Remove()
		log.Printf("Window: closed %q", w.title.Text())
	})
}

// Cursor returns the cursor shape last set by pointer feedback.
func (w *Window) Cursor() string {
	return w.el.ComputedStyle("cursor")
}

// Gesture returns the mode of the gesture in progress.
func (w *Window) Gesture() Mode {
	if w.drag.session == nil {
		return ModeNone
	}
	return w.drag.session.mode
}

// elementPoint converts client coordinates to the content-box origin.
func (w *Window) elementPoint(x, y float64) (float64, float64) {
	b := w.el.Bounds()
	bw := w.el.BorderWidths()
	pd := w.el.Paddings()
	return x - b.X - bw.Left - pd.Left, y - b.Y - bw.Top - pd.Top
}
