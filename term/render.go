// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/render.go
// Summary: Paints the document tree into screen cells.
// Notes: Elements are painted in tree order, so later siblings cover earlier
//   ones the same way hit-testing picks them. Transforms are not drawn;
//   opacity fades colours towards the desktop background.

package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/widget"
)

// cellRect is a half-open range of screen cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) empty() bool { return r.x1 <= r.x0 || r.y1 <= r.y0 }

const cellEpsilon = 1e-6

func (h *Host) cells(r dom.Rect) cellRect {
	return cellRect{
		x0: int(math.Floor(r.X/h.opts.CellWidth + cellEpsilon)),
		y0: int(math.Floor(r.Y/h.opts.CellHeight + cellEpsilon)),
		x1: int(math.Ceil((r.X+r.W)/h.opts.CellWidth - cellEpsilon)),
		y1: int(math.Ceil((r.Y+r.H)/h.opts.CellHeight - cellEpsilon)),
	}
}

// painter clips drawing to the screen.
type painter struct {
	driver        ScreenDriver
	width, height int
}

func (p painter) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.driver.SetContent(x, y, r, nil, style)
}

func (p painter) fill(r cellRect, style tcell.Style) {
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			p.set(x, y, ' ', style)
		}
	}
}

// text draws s from (x, y), truncated to width cells. It returns the
// column after the last drawn cell.
func (p painter) text(x, y, width int, s string, style tcell.Style) int {
	if width <= 0 {
		return x
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.set(x, y, r, style)
		for i := 1; i < w; i++ {
			p.set(x+i, y, ' ', style)
		}
		x += w
	}
	return x
}

func (p painter) frame(r cellRect, style tcell.Style) {
	if r.x1-r.x0 < 2 || r.y1-r.y0 < 2 {
		return
	}
	right, bottom := r.x1-1, r.y1-1
	for x := r.x0 + 1; x < right; x++ {
		p.set(x, r.y0, '─', style)
		p.set(x, bottom, '─', style)
	}
	for y := r.y0 + 1; y < bottom; y++ {
		p.set(r.x0, y, '│', style)
		p.set(right, y, '│', style)
	}
	p.set(r.x0, r.y0, '╭', style)
	p.set(right, r.y0, '╮', style)
	p.set(r.x0, bottom, '╰', style)
	p.set(right, bottom, '╯', style)
}

// Render paints the whole document and shows the frame.
func (h *Host) Render() {
	width, height := h.driver.Size()
	p := painter{driver: h.driver, width: width, height: height}

	desktop, ok := parseColour(h.doc.Body().ComputedStyle("background-color"))
	if !ok {
		desktop = colorful.Color{}
	}
	base := tcell.StyleDefault.Background(toTcell(desktop))
	p.fill(cellRect{x1: width, y1: height}, base)

	h.doc.Walk(func(e *dom.Element, depth int) {
		if depth == 0 {
			return
		}
		h.paint(p, e, desktop)
	})
	h.driver.HideCursor()
	h.driver.Show()
	h.frames++
}

func (h *Host) paint(p painter, e *dom.Element, desktop colorful.Color) {
	if e.ComputedStyle("display") == "none" {
		return
	}
	op := opacityOf(e)
	if op <= 0 {
		return
	}
	box := h.cells(e.Bounds())
	if box.empty() {
		return
	}

	bg, ok := inheritedColour(e, "background-color")
	if !ok {
		bg = desktop
	}
	fg, ok := inheritedColour(e, "color")
	if !ok {
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}
	style := tcell.StyleDefault.
		Background(toTcell(fade(bg, desktop, op))).
		Foreground(toTcell(fade(fg, desktop, op)))

	if _, own := parseColour(e.ComputedStyle("background-color")); own {
		p.fill(box, style)
	}

	focused := h.doc.Focused() == e
	content := h.cells(e.ContentBox())
	row, width := content.y0, content.x1-content.x0

	switch {
	case e.HasClass(widget.ClassWindow):
		border := style
		if c, ok := parseColour(e.ComputedStyle("border-color")); ok {
			border = border.Foreground(toTcell(fade(c, desktop, op)))
		}
		p.frame(box, border)
	case e.Tag() == "input":
		text, st := e.Value(), style
		if text == "" {
			text, st = e.Attr("placeholder"), style.Dim(true)
		}
		end := p.text(content.x0, row, width, text, st)
		if focused && end < content.x1 {
			p.set(end, row, ' ', style.Reverse(true))
		}
	case e.HasClass(widget.ClassButton):
		p.text(content.x0, row, width, "[ "+e.Text()+" ]", style.Bold(focused))
	case len(e.Children()) == 0 && e.Text() != "":
		p.text(content.x0, row, width, e.Text(), style)
	}
}
