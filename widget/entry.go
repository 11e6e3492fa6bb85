// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/entry.go
// Summary: Single-line text input emitting SignalConfirm on Enter.
// Notes: Editing is the document's default action for keypress and Backspace.

package widget

import "github.com/framegrace/sttk/dom"

// Entry is a text input.
type Entry struct {
	*Widget
}

// NewEntry builds an entry. Recognised props: text, placeholder.
func NewEntry(doc *dom.Document, props Props) *Entry {
	InstallStyles(doc)
	el := doc.CreateElement("input")
	e := &Entry{Widget: newWidget(el, Table{
		SignalConfirm: {dom.EventKeyDown: OnEnter},
	})}
	e.bind(e, e.setProp)
	el.SetAttr("type", "text")
	el.AddClass(ClassEntry)
	e.apply(props)
	return e
}

func (e *Entry) setProp(key string, value any) bool {
	s, ok := toString(value)
	if !ok {
		return false
	}
	switch key {
	case "text":
		e.SetText(s)
	case "placeholder":
		e.SetPlaceholder(s)
	default:
		return false
	}
	return true
}

func (e *Entry) Text() string        { return e.el.Value() }
func (e *Entry) SetText(text string) { e.el.SetValue(text) }

func (e *Entry) Placeholder() string { return e.el.Attr("placeholder") }

func (e *Entry) SetPlaceholder(placeholder string) {
	e.el.SetAttr("placeholder", placeholder)
}
