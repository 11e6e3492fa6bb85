// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/colour.go
// Summary: Stylesheet colour parsing and opacity blending for terminal cells.

package term

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/sttk/dom"
)

// parseColour accepts #rgb and #rrggbb values.
func parseColour(value string) (colorful.Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "transparent" {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// toTcell converts a colour to a true-colour tcell value.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// fade blends c towards the backdrop as opacity drops to zero.
func fade(c, backdrop colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return backdrop
	}
	return backdrop.BlendRgb(c, opacity)
}

// opacityOf multiplies the opacity of e and its ancestors.
func opacityOf(e *dom.Element) float64 {
	op := 1.0
	for n := e; n != nil; n = n.Parent() {
		v, err := strconv.ParseFloat(strings.TrimSpace(n.ComputedStyle("opacity")), 64)
		if err != nil {
			continue
		}
		if v < 0 {
			v = 0
		}
		op *= v
	}
	if op > 1 {
		op = 1
	}
	return op
}

// inheritedColour returns the first parseable value of property on e or an
// ancestor.
func inheritedColour(e *dom.Element, property string) (colorful.Color, bool) {
	for n := e; n != nil; n = n.Parent() {
		if c, ok := parseColour(n.ComputedStyle(property)); ok {
			return c, true
		}
	}
	return colorful.Color{}, false
}
