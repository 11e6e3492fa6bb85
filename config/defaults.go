// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into the system configuration.
// Notes: Keys already present, including ones loaded from disk, are never
//   overwritten.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("animation", Section{
		"tick_ms":     10,
		"maximize_ms": 250,
		"show_ms":     125,
		"easing":      "ease-out-quad",
	})
	cfg.RegisterDefaults("window", Section{
		"hit_margin": 16,
		"min_size":   64,
		"snap_zone":  16,
	})
	cfg.RegisterDefaults("terminal", Section{
		"cell_width_px":  8,
		"cell_height_px": 16,
		"mouse":          true,
	})
	cfg.RegisterDefaults("theme", Section{
		"desktop_bg": "#1e1e2e",
		"window_bg":  "#313244",
		"window_fg":  "#cdd6f4",
		"title_bg":   "#45475a",
		"title_fg":   "#f5e0dc",
		"button_bg":  "#585b70",
		"entry_bg":   "#11111b",
	})
	cfg.RegisterDefaults("demo", Section{
		"windows": 3,
		"title":   "sttk",
	})
	cfg.RegisterDefaults("log", Section{
		"file":    "sttk.log",
		"verbose": false,
	})
}
