// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/box.go
// Summary: Container laying its children out in one row or column.

package widget

import "github.com/framegrace/sttk/dom"

// Orientations understood by Box.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Box shows its children side by side along its orientation.
type Box struct {
	*Widget
	children []Interface
}

// NewBox builds a box. Recognised props: orientation.
func NewBox(doc *dom.Document, props Props) *Box {
	InstallStyles(doc)
	b := &Box{Widget: newWidget(doc.CreateElement("div"), nil)}
	b.bind(b, b.setProp)
	b.el.AddClass(ClassBox)
	b.apply(props)
	return b
}

func (b *Box) setProp(key string, value any) bool {
	if key != "orientation" {
		return false
	}
	s, ok := toString(value)
	if ok {
		b.SetOrientation(s)
	}
	return ok
}

// Orientation returns the --orientation channel, horizontal by default.
func (b *Box) Orientation() string {
	if o := b.el.Style("--orientation"); o != "" {
		return o
	}
	return Horizontal
}

// SetOrientation writes the --orientation channel.
func (b *Box) SetOrientation(orientation string) {
	b.el.SetStyle("--orientation", orientation)
}

// Append adds a child shown by ShowAll.
func (b *Box) Append(child Interface) {
	b.children = append(b.children, child)
}

// Children returns the appended widgets.
func (b *Box) Children() []Interface {
	out := make([]Interface, len(b.children))
	copy(out, b.children)
	return out
}

// ShowAll mounts the box and every child inside it.
func (b *Box) ShowAll(parent *dom.Element) error {
	if err := b.Show(parent); err != nil {
		return err
	}
	for _, c := range b.children {
		if err := c.ShowAll(b.el); err != nil {
			return err
		}
	}
	return nil
}
