// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/element.go
// Summary: Host element tree node with classes, inline style and listeners.
// Usage: Every widget owns exactly one Element created by Document.CreateElement.
// Notes: Custom properties ("--x") live in the inline style map like any other declaration.

package dom

import (
	"errors"
	"strings"
)

// ErrHierarchy is returned when an insertion would corrupt the tree.
var ErrHierarchy = errors.New("dom: hierarchy request error")

// Element is one node of the host tree.
type Element struct {
	id       string
	tag      string
	doc      *Document
	parent   *Element
	children []*Element

	classes []string
	inline  map[string]string
	attrs   map[string]string
	text    string
	html    string

	listeners listenerList
	data      map[any]any
}

// ID returns the element's unique identifier.
func (e *Element) ID() string { return e.id }

// Tag returns the element tag name ("div", "input", ...).
func (e *Element) Tag() string { return e.tag }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) error {
	if e == nil || child == nil {
		return ErrHierarchy
	}
	if child == e || child.Contains(e) {
		return ErrHierarchy
	}
	if child.doc != e.doc {
		return ErrHierarchy
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return nil
}

// RemoveChild detaches child from e.
func (e *Element) RemoveChild(child *Element) error {
	if child == nil || child.parent != e {
		return ErrHierarchy
	}
	e.removeChild(child)
	return nil
}

// Remove detaches e from its parent. Detached elements are left as is.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.removeChild(e)
	}
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	if e.doc != nil && e.doc.focused != nil && child.Contains(e.doc.focused) {
		e.doc.focused = nil
	}
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Mounted reports whether e is attached under the document body.
func (e *Element) Mounted() bool {
	if e.doc == nil {
		return false
	}
	return e.doc.body.Contains(e)
}

// AddClass adds a class marker if absent.
func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes a class marker.
func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class marker is present.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Style returns the inline declaration for a property ("" when unset).
func (e *Element) Style(property string) string {
	return e.inline[property]
}

// SetStyle writes an inline declaration. An empty value removes it.
func (e *Element) SetStyle(property, value string) {
	if value == "" {
		delete(e.inline, property)
		return
	}
	if e.inline == nil {
		e.inline = make(map[string]string)
	}
	e.inline[property] = value
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) string { return e.attrs[name] }

// SetAttr writes an attribute value.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Value returns the value of an input element.
func (e *Element) Value() string { return e.attrs["value"] }

// SetValue sets the value of an input element.
func (e *Element) SetValue(v string) { e.SetAttr("value", v) }

// Focusable reports whether the element carries a tabindex.
func (e *Element) Focusable() bool {
	_, ok := e.attrs["tabindex"]
	return ok || e.tag == "input"
}

// Text returns the text content of the element and its descendants.
func (e *Element) Text() string {
	if len(e.children) == 0 {
		return e.text
	}
	var b strings.Builder
	b.WriteString(e.text)
	for _, c := range e.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// SetText replaces the children with plain text.
func (e *Element) SetText(text string) {
	for _, c := range e.Children() {
		e.removeChild(c)
	}
	e.text = text
	e.html = escapeHTML(text)
}

// HTML returns the markup last assigned with SetHTML (or escaped text).
func (e *Element) HTML() string { return e.html }

// SetHTML stores markup; the rendered text drops the tags.
func (e *Element) SetHTML(markup string) {
	for _, c := range e.Children() {
		e.removeChild(c)
	}
	e.html = markup
	e.text = stripTags(markup)
}

// AddEventListener registers fn for events of type t reaching e.
func (e *Element) AddEventListener(t EventType, fn Listener) ListenerHandle {
	return e.listeners.add(t, fn)
}

// ListenerCount reports how many listeners of type t are registered.
func (e *Element) ListenerCount(t EventType) int {
	return e.listeners.count(t)
}

// Data returns a value attached with SetData.
func (e *Element) Data(key any) any { return e.data[key] }

// SetData attaches host-side bookkeeping to the element.
func (e *Element) SetData(key, value any) {
	if e.data == nil {
		e.data = make(map[any]any)
	}
	if value == nil {
		delete(e.data, key)
		return
	}
	e.data[key] = value
}

// Focus moves keyboard focus to e.
func (e *Element) Focus() {
	if e.doc != nil {
		e.doc.focused = e
	}
}

// QueryClass returns the first descendant (or e) carrying the class.
func (e *Element) QueryClass(name string) *Element {
	if e.HasClass(name) {
		return e
	}
	for _, c := range e.children {
		if found := c.QueryClass(name); found != nil {
			return found
		}
	}
	return nil
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func stripTags(markup string) string {
	var b strings.Builder
	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	r := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
	return r.Replace(b.String())
}
