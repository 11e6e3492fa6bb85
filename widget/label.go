// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/label.go
// Summary: Static text widget.

package widget

import "github.com/framegrace/sttk/dom"

// Label displays text or markup. Labels are not selectable by default.
type Label struct {
	*Widget
}

// NewLabel builds a label. Recognised props: text, html, selectable.
func NewLabel(doc *dom.Document, props Props) *Label {
	InstallStyles(doc)
	l := &Label{Widget: newWidget(doc.CreateElement("div"), nil)}
	l.bind(l, l.setProp)
	l.el.AddClass(ClassLabel)
	l.SetSelectable(false)
	l.apply(props)
	return l
}

func (l *Label) setProp(key string, value any) bool {
	switch key {
	case "text", "html":
		s, ok := toString(value)
		if !ok {
			return false
		}
		if key == "text" {
			l.SetText(s)
		} else {
			l.SetHTML(s)
		}
		return true
	case "selectable":
		b, ok := toBool(value)
		if ok {
			l.SetSelectable(b)
		}
		return ok
	}
	return false
}

func (l *Label) Text() string        { return l.el.Text() }
func (l *Label) SetText(text string) { l.el.SetText(text) }
func (l *Label) HTML() string        { return l.el.HTML() }
func (l *Label) SetHTML(html string) { l.el.SetHTML(html) }

// Selectable reports whether the text can be selected.
func (l *Label) Selectable() bool {
	return l.el.Style("--select") != "none"
}

// SetSelectable writes the --select channel ("contain" or "none").
func (l *Label) SetSelectable(selectable bool) {
	if selectable {
		l.el.SetStyle("--select", "contain")
		return
	}
	l.el.SetStyle("--select", "none")
}
