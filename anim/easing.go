// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/easing.go
// Summary: Easing curves mapping linear progress to eased progress.
// Notes: Results are not clamped; overshooting curves such as EaseOutBack are valid.

package anim

// EasingFunc maps progress in [0,1] to an eased value.
type EasingFunc func(progress float64) float64

// Common easing functions
var (
	// Linear - constant speed
	Linear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad - fast start, decelerating. Used by window transitions.
	EaseOutQuad EasingFunc = func(t float64) float64 {
		return 1 - (1-t)*(1-t)
	}

	// EaseInQuad - slow start, accelerating
	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	// EaseInOutQuad - quadratic in, quadratic out
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseSmoothstep - S-curve
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3 - 2*t)
	}

	// EaseOutCubic - cubic deceleration
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t1 := t - 1
		return t1*t1*t1 + 1
	}

	// EaseOutBack - overshoots the target slightly before settling
	EaseOutBack EasingFunc = func(t float64) float64 {
		const c1 = 1.70158
		const c3 = c1 + 1
		t1 := t - 1
		return 1 + c3*t1*t1*t1 + c1*t1*t1
	}
)

// ByName returns a named easing, falling back to EaseOutQuad.
func ByName(name string) EasingFunc {
	switch name {
	case "linear":
		return Linear
	case "ease-in-quad":
		return EaseInQuad
	case "ease-in-out-quad":
		return EaseInOutQuad
	case "smoothstep":
		return EaseSmoothstep
	case "ease-out-cubic":
		return EaseOutCubic
	case "ease-out-back":
		return EaseOutBack
	default:
		return EaseOutQuad
	}
}
