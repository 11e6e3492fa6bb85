// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/grid.go
// Summary: Container placing children on grid tracks.
// Notes: Each child is wrapped in a grid item element carrying its placement.

package widget

import (
	"strconv"

	"github.com/framegrace/sttk/dom"
)

// GridChild is a child widget with its 0-based placement.
type GridChild struct {
	Widget     Interface
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
}

// Grid lays children out on rows and columns.
type Grid struct {
	*Widget
	children []GridChild
}

// NewGrid builds an empty grid.
func NewGrid(doc *dom.Document, props Props) *Grid {
	InstallStyles(doc)
	g := &Grid{Widget: newWidget(doc.CreateElement("div"), nil)}
	g.bind(g, nil)
	g.el.AddClass(ClassGrid)
	g.apply(props)
	return g
}

// Add places w at column/row spanning the given tracks. Spans below one
// are treated as one.
func (g *Grid) Add(w Interface, column, row, columnSpan, rowSpan int) {
	if columnSpan < 1 {
		columnSpan = 1
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	g.children = append(g.children, GridChild{
		Widget:     w,
		Column:     column,
		Row:        row,
		ColumnSpan: columnSpan,
		RowSpan:    rowSpan,
	})
}

// Children returns the placed children.
func (g *Grid) Children() []GridChild {
	out := make([]GridChild, len(g.children))
	copy(out, g.children)
	return out
}

// ShowAll mounts the grid, drops items from an earlier ShowAll and wraps
// each child in a fresh grid item.
func (g *Grid) ShowAll(parent *dom.Element) error {
	if err := g.Show(parent); err != nil {
		return err
	}
	for _, c := range g.el.Children() {
		if c.HasClass(ClassGridItem) {
			c.Remove()
		}
	}
	doc := g.el.Document()
	for _, c := range g.children {
		item := doc.CreateElement("div")
		item.AddClass(ClassGridItem)
		item.SetStyle("--column-index", strconv.Itoa(c.Column))
		item.SetStyle("--row-index", strconv.Itoa(c.Row))
		item.SetStyle("--column-span", strconv.Itoa(c.ColumnSpan))
		item.SetStyle("--row-span", strconv.Itoa(c.RowSpan))
		if err := c.Widget.ShowAll(item); err != nil {
			return err
		}
		if err := g.el.AppendChild(item); err != nil {
			return err
		}
	}
	return nil
}
