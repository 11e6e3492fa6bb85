// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/style.go
// Summary: Cascaded and resolved style lookup (inline > class rules > initial).
// Usage: ComputedStyle is the read-back path for animation start values and geometry.
// Notes: var() resolves through the ancestor chain; calc() is evaluated in place.

package dom

import (
	"strings"
)

const maxVarDepth = 16

var initialValues = map[string]string{
	"opacity":        "1",
	"transform":      "none",
	"cursor":         "auto",
	"position":       "static",
	"display":        "block",
	"pointer-events": "auto",
	"left":           "auto",
	"top":            "auto",
	"width":          "auto",
	"height":         "auto",
	"min-width":      "0px",
	"min-height":     "0px",
}

// geometryProperties resolve to a single px length.
var geometryProperties = map[string]bool{
	"left":                true,
	"top":                 true,
	"width":               true,
	"height":              true,
	"min-width":           true,
	"min-height":          true,
	"border-top-width":    true,
	"border-right-width":  true,
	"border-bottom-width": true,
	"border-left-width":   true,
	"padding-top":         true,
	"padding-right":       true,
	"padding-bottom":      true,
	"padding-left":        true,
}

// declared returns the cascaded value before var() substitution.
func (e *Element) declared(property string) (string, bool) {
	if v, ok := e.inline[property]; ok {
		return v, true
	}
	if e.doc != nil {
		value, found := "", false
		for _, r := range e.doc.rules {
			if !e.HasClass(r.Class) {
				continue
			}
			if v, ok := r.Decls[property]; ok {
				value, found = v, true
			}
		}
		if found {
			return value, true
		}
	}
	return "", false
}

// CustomProperty returns the value of a custom property ("--x"), inherited
// from ancestors when the element does not declare it.
func (e *Element) CustomProperty(name string) (string, bool) {
	for n := e; n != nil; n = n.parent {
		if v, ok := n.declared(name); ok {
			return v, true
		}
	}
	return "", false
}

// substituteVars replaces every var(--name[, fallback]) occurrence. It
// reports false when a variable is missing and has no fallback.
func (e *Element) substituteVars(value string, depth int) (string, bool) {
	if depth > maxVarDepth {
		return "", false
	}
	idx := strings.Index(value, "var(")
	if idx < 0 {
		return value, true
	}
	end := matchParen(value, idx+len("var"))
	if end < 0 {
		return "", false
	}
	inner := value[idx+len("var(") : end]
	name, fallback, hasFallback := strings.Cut(inner, ",")
	name = strings.TrimSpace(name)

	replacement, ok := e.CustomProperty(name)
	if ok {
		replacement, ok = e.substituteVars(replacement, depth+1)
	}
	if !ok {
		if !hasFallback {
			return "", false
		}
		replacement, ok = e.substituteVars(strings.TrimSpace(fallback), depth+1)
		if !ok {
			return "", false
		}
	}
	rest, ok := e.substituteVars(value[end+1:], depth)
	if !ok {
		return "", false
	}
	return value[:idx] + replacement + rest, true
}

// matchParen returns the index of the ")" closing the "(" at open.
func matchParen(s string, open int) int {
	if open >= len(s) || s[open] != '(' {
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ComputedStyle returns the resolved value of a property: geometry
// properties as px lengths, everything else with var() substituted and
// embedded calc() evaluated. Custom properties are returned as declared.
func (e *Element) ComputedStyle(property string) string {
	if strings.HasPrefix(property, "--") {
		v, _ := e.CustomProperty(property)
		return v
	}
	if geometryProperties[property] {
		return formatNumber(e.resolvedLength(property)) + "px"
	}
	raw, ok := e.declared(property)
	if !ok {
		return initialValues[property]
	}
	value, ok := e.substituteVars(raw, 0)
	if !ok {
		return initialValues[property]
	}
	return e.evaluateEmbedded(value, property)
}

// evaluateEmbedded replaces each top-level calc(...) with its value.
func (e *Element) evaluateEmbedded(value, property string) string {
	if !strings.Contains(value, "calc(") {
		return value
	}
	ctx := e.calcContext(property)
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], "calc(")
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		idx += i
		end := matchParen(value, idx+len("calc"))
		if end < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i:idx])
		expr := value[idx : end+1]
		if q, err := evalLength(expr, ctx); err == nil {
			b.WriteString(q.String())
		} else {
			b.WriteString(expr)
		}
		i = end + 1
	}
	return b.String()
}

func (e *Element) calcContext(property string) calcContext {
	ctx := calcContext{}
	if e.doc != nil {
		ctx.vw, ctx.vh = e.doc.width, e.doc.height
	}
	ctx.percentBase = e.percentBase(property)
	return ctx
}

// percentBase is the containing block size along the property's axis.
func (e *Element) percentBase(property string) float64 {
	vertical := property == "top" || property == "height" || property == "min-height"
	// position is keyword-only; reading it evaluated would recurse here.
	pos, _ := e.declared("position")
	if e.parent == nil || strings.TrimSpace(pos) == "fixed" {
		if e.doc == nil {
			return 0
		}
		if vertical {
			return e.doc.height
		}
		return e.doc.width
	}
	pb := e.parent.Bounds()
	if vertical {
		return pb.H
	}
	return pb.W
}

// resolvedLength evaluates a geometry property to px. Unresolvable values
// ("auto", missing variables) fall back to the layout result for sizes
// and to zero for offsets.
func (e *Element) resolvedLength(property string) float64 {
	v, ok := e.lengthValue(property)
	if !ok {
		switch property {
		case "width":
			v = e.autoSize(false)
		case "height":
			v = e.autoSize(true)
		default:
			v = 0
		}
	}
	switch property {
	case "width":
		if min, ok := e.lengthValue("min-width"); ok && v < min {
			v = min
		}
	case "height":
		if min, ok := e.lengthValue("min-height"); ok && v < min {
			v = min
		}
	}
	return v
}

func (e *Element) lengthValue(property string) (float64, bool) {
	raw, ok := e.declared(property)
	if !ok {
		raw = initialValues[property]
	}
	if raw == "" || raw == "auto" {
		return 0, false
	}
	value, ok := e.substituteVars(raw, 0)
	if !ok {
		return 0, false
	}
	q, err := evalLength(value, e.calcContext(property))
	if err != nil || (q.unit != "px" && q.unit != "") {
		return 0, false
	}
	return q.v, true
}

// Length returns a geometry property resolved to px.
func (e *Element) Length(property string) float64 {
	return e.resolvedLength(property)
}
