// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/button.go
// Summary: Push button; connect SignalActivate to react to clicks and Enter.

package widget

import "github.com/framegrace/sttk/dom"

// Button is a clickable text widget.
type Button struct {
	*Widget
}

// NewButton builds a button. Recognised props: text, html.
func NewButton(doc *dom.Document, props Props) *Button {
	InstallStyles(doc)
	b := &Button{Widget: newWidget(doc.CreateElement("div"), nil)}
	b.bind(b, b.setProp)
	b.el.AddClass(ClassButton)
	b.apply(props)
	return b
}

func (b *Button) setProp(key string, value any) bool {
	s, ok := toString(value)
	if !ok {
		return false
	}
	switch key {
	case "text":
		b.SetText(s)
	case "html":
		b.SetHTML(s)
	default:
		return false
	}
	return true
}

func (b *Button) Text() string        { return b.el.Text() }
func (b *Button) SetText(text string) { b.el.SetText(text) }
func (b *Button) HTML() string        { return b.el.HTML() }
func (b *Button) SetHTML(html string) { b.el.SetHTML(html) }
