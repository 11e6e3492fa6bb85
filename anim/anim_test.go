// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/eventloop"
)

func newElement(t *testing.T) (*dom.Element, *eventloop.Manual) {
	t.Helper()
	clock := eventloop.NewManual()
	doc := dom.NewDocument(clock, 800, 600)
	el := doc.CreateElement("div")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	return el, clock
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in    string
		texts []string
		kinds []Kind
	}{
		{"0.75", []string{"0.75"}, []Kind{Number}},
		{"16px", []string{"16px"}, []Kind{Dimension}},
		{"50%", []string{"50%"}, []Kind{Percentage}},
		{"matrix(1, 0, 0, 1, 0, 12.5)", []string{"1", "0", "0", "1", "0", "12.5"},
			[]Kind{Number, Number, Number, Number, Number, Number}},
		{"var(--x)", []string{"var(--x)"}, []Kind{Opaque}},
		{"calc(100% - var(--w)) 4px", []string{"calc(100% - var(--w))", "4px"}, []Kind{Opaque, Dimension}},
		{"h1 x2 none", nil, nil},
		{"translate(-4px)", []string{"-4px"}, []Kind{Dimension}},
		{"0 -2px, -0.5", []string{"0", "-2px", "-0.5"}, []Kind{Number, Dimension, Number}},
		{"-50%", []string{"-50%"}, []Kind{Percentage}},
		{"a-1 --x", []string{"1"}, []Kind{Number}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) != len(tt.texts) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d", tt.in, len(got), len(tt.texts))
			}
			for i, tok := range got {
				if tok.Text != tt.texts[i] || tok.Kind != tt.kinds[i] {
					t.Fatalf("token %d = %q (%s), want %q (%s)", i, tok.Text, tok.Kind, tt.texts[i], tt.kinds[i])
				}
				if tt.in[tok.Start:tok.End] != tok.Text {
					t.Fatalf("token %d span mismatch", i)
				}
			}
		})
	}
}

func TestTokenValuesAndUnits(t *testing.T) {
	got := Tokenize("12.5vw")
	if len(got) != 1 || got[0].Value != 12.5 || got[0].Unit != "vw" {
		t.Fatalf("Tokenize = %+v", got)
	}
}

func TestTokenizeNegativeValue(t *testing.T) {
	got := Tokenize("-12.5px")
	if len(got) != 1 || got[0].Value != -12.5 || got[0].Unit != "px" || got[0].Start != 0 {
		t.Fatalf("Tokenize = %+v", got)
	}
}

func TestEasings(t *testing.T) {
	for name, fn := range map[string]EasingFunc{
		"linear":       Linear,
		"outQuad":      EaseOutQuad,
		"inQuad":       EaseInQuad,
		"inOutQuad":    EaseInOutQuad,
		"smoothstep":   EaseSmoothstep,
		"outCubic":     EaseOutCubic,
		"outBack":      EaseOutBack,
		"byNameFallbk": ByName("nope"),
	} {
		if v := fn(0); math.Abs(v) > 1e-9 {
			t.Errorf("%s(0) = %v", name, v)
		}
		if v := fn(1); math.Abs(v-1) > 1e-9 {
			t.Errorf("%s(1) = %v", name, v)
		}
	}
	if v := EaseOutQuad(0.5); v != 0.75 {
		t.Fatalf("EaseOutQuad(0.5) = %v, want 0.75", v)
	}
	overshoot := false
	for x := 0.0; x <= 1; x += 0.05 {
		if EaseOutBack(x) > 1 {
			overshoot = true
		}
	}
	if !overshoot {
		t.Fatalf("EaseOutBack never overshoots")
	}
}

func TestAnimateNumericEndpoints(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("opacity", "0")

	completed := 0
	run := Animate(el, Styles{"opacity": "1"}, 100*time.Millisecond, EaseOutQuad, func(*dom.Element) { completed++ })

	// progress 0 resolves to the start value
	if !strings.HasPrefix(el.Style("opacity"), "calc(") {
		t.Fatalf("first tick did not write a blend: %q", el.Style("opacity"))
	}
	if got := el.ComputedStyle("opacity"); got != "0" {
		t.Fatalf("opacity at progress 0 = %q, want 0", got)
	}

	clock.Advance(50 * time.Millisecond)
	mid := el.ComputedStyle("opacity")
	if mid == "0" || mid == "1" {
		t.Fatalf("opacity mid-run = %q", mid)
	}
	if run.Done() {
		t.Fatalf("run finished early")
	}

	clock.Advance(200 * time.Millisecond)
	if !run.Done() || run.Canceled() {
		t.Fatalf("run not committed")
	}
	if got := el.Style("opacity"); got != "1" {
		t.Fatalf("final inline opacity = %q, want literal 1", got)
	}
	if completed != 1 {
		t.Fatalf("onComplete calls = %d, want 1", completed)
	}
	if run.Progress() != 1 {
		t.Fatalf("progress = %v", run.Progress())
	}
	clock.Advance(time.Second)
	if completed != 1 {
		t.Fatalf("onComplete ran again")
	}
}

func TestAnimateTickCount(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("opacity", "0")
	var values []string
	done := false
	Animate(el, Styles{"opacity": "1"}, 50*time.Millisecond, Linear, func(*dom.Element) { done = true })
	values = append(values, el.ComputedStyle("opacity"))
	for !done {
		clock.Advance(DefaultTickPeriod)
		values = append(values, el.ComputedStyle("opacity"))
	}
	want := []string{"0", "0.2", "0.4", "0.6", "0.8", "1"}
	if strings.Join(values, ",") != strings.Join(want, ",") {
		t.Fatalf("values = %v, want %v", values, want)
	}
}

func TestAnimateFromNegativeStart(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("position", "fixed")
	el.SetStyle("left", "-50px")

	Animate(el, Styles{"left": "0px"}, 100*time.Millisecond, Linear, nil)
	if got := el.Style("left"); got != "calc(-50px + 0 * (0px - -50px))" {
		t.Fatalf("first blend = %q", got)
	}
	if got := el.Length("left"); got != -50 {
		t.Fatalf("left at progress 0 = %v, want -50", got)
	}
	clock.Advance(50 * time.Millisecond)
	if got := el.Length("left"); got != -25 {
		t.Fatalf("left mid-run = %v, want -25", got)
	}
	clock.Advance(time.Second)
	if got := el.Length("left"); got != 0 {
		t.Fatalf("left final = %v", got)
	}
}

func TestAnimateLengthsAndVars(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("position", "fixed")
	el.SetStyle("--x", "40px")
	el.SetStyle("left", "200px")

	Animate(el, Styles{"left": "var(--x)"}, 100*time.Millisecond, Linear, nil)
	clock.Advance(50 * time.Millisecond)
	if got := el.Length("left"); got != 120 {
		t.Fatalf("left mid-run = %v, want 120", got)
	}
	clock.Advance(time.Second)
	if got := el.Style("left"); got != "var(--x)" {
		t.Fatalf("left = %q", got)
	}
	if got := el.Length("left"); got != 40 {
		t.Fatalf("resolved left = %v, want 40", got)
	}
}

func TestAnimateTokenlessTargetWaitsForCommit(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("cursor", "move")
	Animate(el, Styles{"cursor": "auto", "opacity": "0.5"}, 30*time.Millisecond, Linear, nil)
	if got := el.Style("cursor"); got != "move" {
		t.Fatalf("tokenless property changed early: %q", got)
	}
	clock.Advance(time.Second)
	if got := el.Style("cursor"); got != "auto" {
		t.Fatalf("cursor = %q after commit", got)
	}
}

func TestAnimateMismatchIsDetected(t *testing.T) {
	el, clock := newElement(t)
	run := Animate(el, Styles{"transform": "matrix(1, 0, 0, 1, 0, 0)"}, 50*time.Millisecond, Linear, nil)
	if got := run.Mismatched(); len(got) != 1 || got[0] != "transform" {
		t.Fatalf("Mismatched = %v", got)
	}
	if got := el.Style("transform"); got != "" {
		t.Fatalf("mismatched property was blended: %q", got)
	}
	clock.Advance(time.Second)
	if got := el.Style("transform"); got != "matrix(1, 0, 0, 1, 0, 0)" {
		t.Fatalf("transform = %q", got)
	}
}

func TestNewestRunWins(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("opacity", "0")
	el.SetStyle("position", "fixed")
	el.SetStyle("left", "0px")

	firstDone := false
	first := Animate(el, Styles{"opacity": "1", "left": "100px"}, 100*time.Millisecond, Linear, func(*dom.Element) { firstDone = true })
	clock.Advance(30 * time.Millisecond)

	second := Animate(el, Styles{"opacity": "0"}, 100*time.Millisecond, Linear, nil)
	ctrl := For(el)
	if ctrl.Owner("opacity") != second || ctrl.Owner("left") != first {
		t.Fatalf("ownership not transferred")
	}
	if got := first.Properties(); len(got) != 1 || got[0] != "left" {
		t.Fatalf("first run properties = %v", got)
	}

	third := Animate(el, Styles{"left": "0px"}, 100*time.Millisecond, Linear, nil)
	if !first.Done() || !first.Canceled() {
		t.Fatalf("fully superseded run still active")
	}
	if len(ctrl.Active()) != 2 {
		t.Fatalf("active runs = %d, want 2", len(ctrl.Active()))
	}

	clock.Advance(time.Second)
	if firstDone {
		t.Fatalf("canceled run completed")
	}
	if !second.Done() || !third.Done() {
		t.Fatalf("remaining runs did not finish")
	}
	if el.Style("opacity") != "0" || el.Style("left") != "0px" {
		t.Fatalf("final styles opacity=%q left=%q", el.Style("opacity"), el.Style("left"))
	}
	if len(ctrl.Active()) != 0 {
		t.Fatalf("controller still tracks runs")
	}
}

func TestCancelKeepsLastValue(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("opacity", "0")
	called := false
	run := Animate(el, Styles{"opacity": "1"}, 100*time.Millisecond, Linear, func(*dom.Element) { called = true })
	clock.Advance(40 * time.Millisecond)
	before := el.ComputedStyle("opacity")
	run.Cancel()
	run.Cancel()
	clock.Advance(time.Second)
	if called {
		t.Fatalf("canceled run completed")
	}
	if got := el.ComputedStyle("opacity"); got != before {
		t.Fatalf("opacity changed after cancel: %q -> %q", before, got)
	}
}

func TestZeroDurationCommitsOnSecondTick(t *testing.T) {
	el, clock := newElement(t)
	el.SetStyle("opacity", "0")
	run := Animate(el, Styles{"opacity": "1"}, 0, nil, nil)
	if run.Done() {
		t.Fatalf("committed before the scheduled tick")
	}
	clock.Advance(DefaultTickPeriod)
	if !run.Done() || el.Style("opacity") != "1" {
		t.Fatalf("zero duration run not committed")
	}
}

func TestSetTickPeriod(t *testing.T) {
	defer SetTickPeriod(0)
	SetTickPeriod(20 * time.Millisecond)
	if TickPeriod() != 20*time.Millisecond {
		t.Fatalf("TickPeriod = %v", TickPeriod())
	}
	SetTickPeriod(-1)
	if TickPeriod() != DefaultTickPeriod {
		t.Fatalf("TickPeriod = %v, want default", TickPeriod())
	}
}
