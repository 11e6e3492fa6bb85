// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/styles.go
// Summary: Stylesheet rules for the toolkit's classes.
// Notes: The window's top border is the title band: its first hit margin is the
//   north resize zone, the rest is the move zone.

package widget

import (
	"github.com/framegrace/sttk/dom"
)

// Class names used by the toolkit.
const (
	ClassDesktop     = "sttk-desktop"
	ClassWindow      = "sttk-window"
	ClassTitle       = "sttk-window-title"
	ClassCloseButton = "sttk-window-close-button"
	ClassBox         = "sttk-box"
	ClassGrid        = "sttk-grid"
	ClassGridItem    = "sttk-grid-item"
	ClassLabel       = "sttk-label"
	ClassButton      = "sttk-button"
	ClassEntry       = "sttk-entry"
	ClassMaximized   = "maximized"
)

// InstallStyles adds the toolkit rules to doc once. Rules follow the active
// settings at the time of the first call.
func InstallStyles(doc *dom.Document) {
	if doc == nil || doc.HasRule(ClassWindow) {
		return
	}
	s := settings
	m := s.HitMargin
	t := s.Theme

	doc.Body().AddClass(ClassDesktop)
	doc.AddRule(ClassDesktop, map[string]string{
		"background-color": t.DesktopBG,
	})
	doc.AddRule(ClassWindow, map[string]string{
		"position":            "fixed",
		"left":                "var(--x)",
		"top":                 "var(--y)",
		"width":               "var(--width)",
		"height":              "var(--height)",
		"min-width":           px(s.MinSize),
		"min-height":          px(s.MinSize),
		"border-top-width":    px(2 * m),
		"border-left-width":   px(m / 2),
		"border-right-width":  px(m / 2),
		"border-bottom-width": px(m),
		"background-color":    t.WindowBG,
		"color":               t.WindowFG,
		"border-color":        t.TitleBG,
	})
	doc.AddRule(ClassTitle, map[string]string{
		"position":         "absolute",
		"left":             px(m / 2),
		"top":              px(m),
		"height":           px(m),
		"width":            "calc(100% - " + px(2*m) + ")",
		"pointer-events":   "none",
		"color":            t.TitleFG,
		"background-color": t.TitleBG,
	})
	doc.AddRule(ClassCloseButton, map[string]string{
		"position":         "absolute",
		"top":              px(m),
		"left":             "calc(100% - " + px(m+m/2) + ")",
		"width":            px(m),
		"height":           px(m),
		"color":            t.TitleFG,
		"background-color": t.TitleBG,
	})
	doc.AddRule(ClassBox, map[string]string{
		"display": "flex",
	})
	doc.AddRule(ClassGrid, map[string]string{
		"display": "grid",
	})
	doc.AddRule(ClassLabel, map[string]string{
		"color": t.WindowFG,
	})
	doc.AddRule(ClassButton, map[string]string{
		"background-color": t.ButtonBG,
		"color":            t.WindowFG,
		"cursor":           "pointer",
	})
	doc.AddRule(ClassEntry, map[string]string{
		"background-color": t.EntryBG,
		"color":            t.WindowFG,
		"cursor":           "text",
	})
}
