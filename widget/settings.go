// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/settings.go
// Summary: Tunable gesture margins, transition timings and theme colours.
// Usage: ApplyConfig(config.System()) once at startup, before widgets are built.

package widget

import (
	"time"

	"github.com/framegrace/sttk/anim"
	"github.com/framegrace/sttk/config"
)

// Theme holds the colours installed into the document stylesheet.
type Theme struct {
	DesktopBG string
	WindowBG  string
	WindowFG  string
	TitleBG   string
	TitleFG   string
	ButtonBG  string
	EntryBG   string
}

// Settings are the toolkit-wide tunables.
type Settings struct {
	// HitMargin is the width of the resize zones along each edge in px.
	HitMargin float64
	// MinSize floors window width and height in px.
	MinSize float64
	// SnapZone is the distance from the viewport top that maximizes on release.
	SnapZone float64

	MaximizeDuration time.Duration
	ShowDuration     time.Duration
	Easing           anim.EasingFunc

	Theme Theme
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{
		HitMargin:        16,
		MinSize:          64,
		SnapZone:         16,
		MaximizeDuration: 250 * time.Millisecond,
		ShowDuration:     125 * time.Millisecond,
		Easing:           anim.EaseOutQuad,
		Theme: Theme{
			DesktopBG: "#1e1e2e",
			WindowBG:  "#313244",
			WindowFG:  "#cdd6f4",
			TitleBG:   "#45475a",
			TitleFG:   "#f5e0dc",
			ButtonBG:  "#585b70",
			EntryBG:   "#11111b",
		},
	}
}

var settings = DefaultSettings()

// CurrentSettings returns the active tunables.
func CurrentSettings() Settings { return settings }

// SetSettings replaces the active tunables. Zero fields keep their defaults.
func SetSettings(s Settings) {
	def := DefaultSettings()
	if s.HitMargin <= 0 {
		s.HitMargin = def.HitMargin
	}
	if s.MinSize <= 0 {
		s.MinSize = def.MinSize
	}
	if s.SnapZone <= 0 {
		s.SnapZone = def.SnapZone
	}
	if s.MaximizeDuration <= 0 {
		s.MaximizeDuration = def.MaximizeDuration
	}
	if s.ShowDuration <= 0 {
		s.ShowDuration = def.ShowDuration
	}
	if s.Easing == nil {
		s.Easing = def.Easing
	}
	fillTheme(&s.Theme, def.Theme)
	settings = s
}

func fillTheme(t *Theme, def Theme) {
	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&t.DesktopBG, def.DesktopBG},
		{&t.WindowBG, def.WindowBG},
		{&t.WindowFG, def.WindowFG},
		{&t.TitleBG, def.TitleBG},
		{&t.TitleFG, def.TitleFG},
		{&t.ButtonBG, def.ButtonBG},
		{&t.EntryBG, def.EntryBG},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}

// ApplyConfig reads the animation, window and theme sections.
func ApplyConfig(cfg config.Config) {
	def := DefaultSettings()
	s := Settings{
		HitMargin:        cfg.GetFloat("window", "hit_margin", def.HitMargin),
		MinSize:          cfg.GetFloat("window", "min_size", def.MinSize),
		SnapZone:         cfg.GetFloat("window", "snap_zone", def.SnapZone),
		MaximizeDuration: cfg.GetMillis("animation", "maximize_ms", def.MaximizeDuration),
		ShowDuration:     cfg.GetMillis("animation", "show_ms", def.ShowDuration),
		Easing:           anim.ByName(cfg.GetString("animation", "easing", "ease-out-quad")),
		Theme: Theme{
			DesktopBG: cfg.GetString("theme", "desktop_bg", def.Theme.DesktopBG),
			WindowBG:  cfg.GetString("theme", "window_bg", def.Theme.WindowBG),
			WindowFG:  cfg.GetString("theme", "window_fg", def.Theme.WindowFG),
			TitleBG:   cfg.GetString("theme", "title_bg", def.Theme.TitleBG),
			TitleFG:   cfg.GetString("theme", "title_fg", def.Theme.TitleFG),
			ButtonBG:  cfg.GetString("theme", "button_bg", def.Theme.ButtonBG),
			EntryBG:   cfg.GetString("theme", "entry_bg", def.Theme.EntryBG),
		},
	}
	SetSettings(s)
	anim.SetTickPeriod(cfg.GetMillis("animation", "tick_ms", anim.DefaultTickPeriod))
	SetVerboseLogging(cfg.GetBool("log", "verbose", false))
}
