// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/layout.go
// Summary: Minimal box model: fixed/absolute positioning plus block, flex and grid flow.
// Usage: Bounds feeds hit-testing, gesture classification and the terminal renderer.
// Notes: Recomputed on every call from resolved styles; nothing is cached.

package dom

import "strconv"

// DefaultLineHeight is the intrinsic height of a text line in px.
const DefaultLineHeight = 16.0

// Rect is an axis-aligned box in client px.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Edges holds per-side widths.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// BorderWidths returns the resolved border widths.
func (e *Element) BorderWidths() Edges {
	return Edges{
		Top:    e.resolvedLength("border-top-width"),
		Right:  e.resolvedLength("border-right-width"),
		Bottom: e.resolvedLength("border-bottom-width"),
		Left:   e.resolvedLength("border-left-width"),
	}
}

// Paddings returns the resolved paddings.
func (e *Element) Paddings() Edges {
	return Edges{
		Top:    e.resolvedLength("padding-top"),
		Right:  e.resolvedLength("padding-right"),
		Bottom: e.resolvedLength("padding-bottom"),
		Left:   e.resolvedLength("padding-left"),
	}
}

func (e *Element) edges() Edges {
	b, p := e.BorderWidths(), e.Paddings()
	return Edges{Top: b.Top + p.Top, Right: b.Right + p.Right, Bottom: b.Bottom + p.Bottom, Left: b.Left + p.Left}
}

func (e *Element) positioned() bool {
	switch e.ComputedStyle("position") {
	case "fixed", "absolute":
		return true
	}
	return false
}

// Bounds returns the border box in client coordinates.
func (e *Element) Bounds() Rect {
	if e.doc != nil && e == e.doc.body {
		return Rect{W: e.doc.width, H: e.doc.height}
	}
	if e.positioned() {
		x, y := e.resolvedLength("left"), e.resolvedLength("top")
		if e.ComputedStyle("position") == "absolute" && e.parent != nil {
			pb := e.parent.Bounds()
			x += pb.X
			y += pb.Y
		}
		ed := e.edges()
		return Rect{
			X: x,
			Y: y,
			W: e.resolvedLength("width") + ed.Left + ed.Right,
			H: e.resolvedLength("height") + ed.Top + ed.Bottom,
		}
	}
	return e.layoutBox()
}

// ContentBox returns the content box in client coordinates.
func (e *Element) ContentBox() Rect {
	b := e.Bounds()
	ed := e.edges()
	w := b.W - ed.Left - ed.Right
	h := b.H - ed.Top - ed.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: b.X + ed.Left, Y: b.Y + ed.Top, W: w, H: h}
}

// autoSize is used for sizes that have no usable declaration.
func (e *Element) autoSize(vertical bool) float64 {
	if e.positioned() {
		return 0
	}
	box := e.layoutBox()
	ed := e.edges()
	if vertical {
		return nonNegative(box.H - ed.Top - ed.Bottom)
	}
	return nonNegative(box.W - ed.Left - ed.Right)
}

// layoutBox returns the border box the parent's flow allots to e.
func (e *Element) layoutBox() Rect {
	p := e.parent
	if p == nil {
		return Rect{}
	}
	content := p.ContentBox()
	flow := p.flowChildren()
	index := -1
	for i, c := range flow {
		if c == e {
			index = i
			break
		}
	}
	if index < 0 {
		return Rect{}
	}

	switch p.ComputedStyle("display") {
	case "flex":
		n := float64(len(flow))
		orientation, _ := p.declared("--orientation")
		if orientation == "vertical" {
			h := content.H / n
			return Rect{X: content.X, Y: content.Y + h*float64(index), W: content.W, H: h}
		}
		w := content.W / n
		return Rect{X: content.X + w*float64(index), Y: content.Y, W: w, H: content.H}
	case "grid":
		cols, rows := 1, 1
		for _, c := range flow {
			ci, cs, ri, rs := c.gridPlacement()
			if ci+cs > cols {
				cols = ci + cs
			}
			if ri+rs > rows {
				rows = ri + rs
			}
		}
		ci, cs, ri, rs := e.gridPlacement()
		cw := content.W / float64(cols)
		rh := content.H / float64(rows)
		return Rect{
			X: content.X + cw*float64(ci),
			Y: content.Y + rh*float64(ri),
			W: cw * float64(cs),
			H: rh * float64(rs),
		}
	}

	// block flow: leaves take one line (or their declared height), the
	// remaining space is shared by containers.
	heights := make([]float64, len(flow))
	fixed, flexible := 0.0, 0
	for i, c := range flow {
		if h, ok := c.lengthValue("height"); ok {
			ed := c.edges()
			heights[i] = h + ed.Top + ed.Bottom
			fixed += heights[i]
			continue
		}
		if len(c.children) == 0 {
			ed := c.edges()
			heights[i] = p.doc.lineHeight() + ed.Top + ed.Bottom
			fixed += heights[i]
			continue
		}
		heights[i] = -1
		flexible++
	}
	share := 0.0
	if flexible > 0 {
		share = nonNegative(content.H-fixed) / float64(flexible)
	}
	y := content.Y
	for i := 0; i < index; i++ {
		if heights[i] < 0 {
			y += share
		} else {
			y += heights[i]
		}
	}
	h := heights[index]
	if h < 0 {
		h = share
	}
	return Rect{X: content.X, Y: y, W: content.W, H: h}
}

func (e *Element) flowChildren() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if !c.positioned() {
			out = append(out, c)
		}
	}
	return out
}

// gridPlacement reads 0-based track indices and spans from custom properties.
func (e *Element) gridPlacement() (col, colSpan, row, rowSpan int) {
	col = e.intProperty("--column-index", 0)
	colSpan = e.intProperty("--column-span", 1)
	row = e.intProperty("--row-index", 0)
	rowSpan = e.intProperty("--row-span", 1)
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if colSpan < 1 {
		colSpan = 1
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	return
}

func (e *Element) intProperty(name string, def int) int {
	v, ok := e.declared(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (d *Document) lineHeight() float64 {
	if d == nil || d.line <= 0 {
		return DefaultLineHeight
	}
	return d.line
}

// SetLineHeight sets the intrinsic line height used by block flow.
func (d *Document) SetLineHeight(px float64) { d.line = px }

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
