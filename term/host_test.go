// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/sttk/config"
	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/eventloop"
	"github.com/framegrace/sttk/widget"
)

func newTestHost(t *testing.T) (*Host, *eventloop.Manual, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	clock := eventloop.NewManual()
	doc := dom.NewDocument(clock, 1, 1)
	host := NewHost(NewTcellScreenDriver(screen), doc, DefaultOptions())
	return host, clock, screen
}

// showWindow mounts a window whose border box covers cells x 12..51, y 3..18.
func showWindow(t *testing.T, host *Host, clock *eventloop.Manual, props widget.Props) *widget.Window {
	t.Helper()
	all := widget.Props{"x": 96, "y": 48, "width": 304, "height": 208}
	for k, v := range props {
		all[k] = v
	}
	w := widget.NewWindow(host.Document(), all)
	if err := w.ShowAll(host.Document().Body()); err != nil {
		t.Fatalf("ShowAll: %v", err)
	}
	clock.Advance(time.Second)
	return w
}

func rowText(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func mouse(host *Host, x, y int, buttons tcell.ButtonMask) {
	host.HandleEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func key(host *Host, k tcell.Key, r rune) bool {
	return host.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
}

func TestViewportFollowsScreen(t *testing.T) {
	host, _, _ := newTestHost(t)
	if w, h := host.Document().Viewport(); w != 640 || h != 400 {
		t.Fatalf("viewport = %vx%v, want 640x400", w, h)
	}
	host.HandleEvent(tcell.NewEventResize(100, 40))
	if w, h := host.Document().Viewport(); w != 800 || h != 640 {
		t.Fatalf("viewport after resize = %vx%v, want 800x640", w, h)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.Config{
		"terminal": map[string]interface{}{"cell_width_px": 10.0},
	})
	if opts.CellWidth != 10 || opts.CellHeight != 16 || opts.FrameInterval != DefaultFrameInterval {
		t.Fatalf("options = %+v", opts)
	}
}

func TestRenderWindowFrameTitleAndColours(t *testing.T) {
	host, clock, screen := newTestHost(t)
	showWindow(t, host, clock, widget.Props{"title": "Hello"})
	host.Render()

	corners := map[[2]int]rune{
		{12, 3}:  '╭',
		{51, 3}:  '╮',
		{12, 18}: '╰',
		{51, 18}: '╯',
	}
	for pos, want := range corners {
		if got, _, _, _ := screen.GetContent(pos[0], pos[1]); got != want {
			t.Fatalf("cell %v = %q, want %q", pos, got, want)
		}
	}
	if !strings.Contains(rowText(screen, 4), "Hello") {
		t.Fatalf("title row = %q", rowText(screen, 4))
	}
	if !strings.Contains(rowText(screen, 4), "×") {
		t.Fatalf("close glyph missing from %q", rowText(screen, 4))
	}

	theme := widget.CurrentSettings().Theme
	_, _, inside, _ := screen.GetContent(30, 10)
	_, bg, _ := inside.Decompose()
	if want := mustColour(t, theme.WindowBG); bg != want {
		t.Fatalf("window background = %v, want %v", bg, want)
	}
	_, _, outside, _ := screen.GetContent(0, 0)
	_, bg, _ = outside.Decompose()
	if want := mustColour(t, theme.DesktopBG); bg != want {
		t.Fatalf("desktop background = %v, want %v", bg, want)
	}
	if host.Frames() != 1 {
		t.Fatalf("frames = %d", host.Frames())
	}
}

func TestRenderSkipsTransparentWindow(t *testing.T) {
	host, _, screen := newTestHost(t)
	w := widget.NewWindow(host.Document(), widget.Props{"x": 96, "y": 48, "width": 304, "height": 208})
	if err := w.Show(host.Document().Body()); err != nil {
		t.Fatal(err)
	}
	host.Render()
	if got, _, _, _ := screen.GetContent(12, 3); got == '╭' {
		t.Fatalf("window drawn before its entrance animation started")
	}
}

func TestRenderLeafWidgets(t *testing.T) {
	host, clock, screen := newTestHost(t)
	box := widget.NewBox(host.Document(), widget.Props{"orientation": widget.Vertical})
	box.Append(widget.NewLabel(host.Document(), widget.Props{"text": "Name"}))
	entry := widget.NewEntry(host.Document(), widget.Props{"placeholder": "type here"})
	box.Append(entry)
	box.Append(widget.NewButton(host.Document(), widget.Props{"text": "OK"}))
	showWindow(t, host, clock, widget.Props{"child": box})
	host.Render()

	var screenText strings.Builder
	for y := 0; y < 25; y++ {
		screenText.WriteString(rowText(screen, y))
		screenText.WriteByte('\n')
	}
	for _, want := range []string{"Name", "type here", "[ OK ]"} {
		if !strings.Contains(screenText.String(), want) {
			t.Fatalf("screen lacks %q:\n%s", want, screenText.String())
		}
	}
}

func TestMouseDragMovesWindow(t *testing.T) {
	host, clock, _ := newTestHost(t)
	w := showWindow(t, host, clock, nil)

	mouse(host, 30, 4, tcell.Button1)
	if w.Gesture() != widget.ModeMove {
		t.Fatalf("gesture = %v, want move", w.Gesture())
	}
	mouse(host, 35, 6, tcell.Button1)
	mouse(host, 35, 6, tcell.ButtonNone)

	if w.X() != 136 || w.Y() != 80 {
		t.Fatalf("window at %v,%v, want 136,80", w.X(), w.Y())
	}
	if w.Gesture() != widget.ModeNone {
		t.Fatalf("gesture still active after release")
	}
}

func TestClickReachesButton(t *testing.T) {
	host, clock, _ := newTestHost(t)
	button := widget.NewButton(host.Document(), widget.Props{"text": "Go"})
	showWindow(t, host, clock, widget.Props{"child": button})

	activated := 0
	button.Connect(widget.SignalActivate, func(*widget.Event) { activated++ })
	b := host.cells(button.Element().Bounds())

	mouse(host, b.x0, b.y0, tcell.Button1)
	mouse(host, b.x0, b.y0, tcell.ButtonNone)
	if activated != 1 {
		t.Fatalf("activate fired %d times, want 1", activated)
	}
	if host.Document().Focused() != button.Element() {
		t.Fatalf("press did not focus the button")
	}

	// Releasing elsewhere is not a click.
	mouse(host, b.x0, b.y0, tcell.Button1)
	mouse(host, 0, 0, tcell.ButtonNone)
	if activated != 1 {
		t.Fatalf("release outside the button clicked it")
	}
}

func TestHoverCursor(t *testing.T) {
	host, clock, _ := newTestHost(t)
	showWindow(t, host, clock, nil)
	if host.Cursor() != "auto" {
		t.Fatalf("cursor before any pointer = %q", host.Cursor())
	}
	mouse(host, 51, 10, tcell.ButtonNone)
	if got := host.Cursor(); got != "e-resize" {
		t.Fatalf("cursor on east edge = %q", got)
	}
	mouse(host, 30, 4, tcell.ButtonNone)
	if got := host.Cursor(); got != "move" {
		t.Fatalf("cursor on title band = %q", got)
	}
}

func TestKeysEditFocusedEntry(t *testing.T) {
	host, clock, _ := newTestHost(t)
	entry := widget.NewEntry(host.Document(), nil)
	showWindow(t, host, clock, widget.Props{"child": entry})
	confirmed := 0
	entry.Connect(widget.SignalConfirm, func(*widget.Event) { confirmed++ })
	entry.Element().Focus()

	key(host, tcell.KeyRune, 'a')
	key(host, tcell.KeyRune, 'b')
	key(host, tcell.KeyBackspace2, 0)
	key(host, tcell.KeyEnter, '\r')

	if entry.Text() != "a" {
		t.Fatalf("entry text = %q, want a", entry.Text())
	}
	if confirmed != 1 {
		t.Fatalf("confirm fired %d times", confirmed)
	}
}

func TestKeyFilterConsumesKeys(t *testing.T) {
	host, clock, _ := newTestHost(t)
	entry := widget.NewEntry(host.Document(), nil)
	showWindow(t, host, clock, widget.Props{"child": entry})
	entry.Element().Focus()

	host.SetKeyFilter(func(ev *tcell.EventKey) bool {
		return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
	})
	key(host, tcell.KeyRune, 'q')
	key(host, tcell.KeyRune, 'x')
	if entry.Text() != "x" {
		t.Fatalf("entry text = %q, want x", entry.Text())
	}
	if key(host, tcell.KeyF5, 0) {
		t.Fatalf("unmapped key reported as handled")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	host, clock, _ := newTestHost(t)
	box := widget.NewBox(host.Document(), nil)
	first := widget.NewEntry(host.Document(), nil)
	second := widget.NewButton(host.Document(), widget.Props{"text": "b"})
	box.Append(first)
	box.Append(second)
	w := showWindow(t, host, clock, widget.Props{"child": box})

	var order []*dom.Element
	for i := 0; i < 5; i++ {
		key(host, tcell.KeyTab, 0)
		order = append(order, host.Document().Focused())
	}
	want := []*dom.Element{w.Element(), box.Element(), first.Element(), second.Element(), w.Element()}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("focus step %d = %v, want %v", i, order[i].Classes(), want[i].Classes())
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if _, ok := parseColour("transparent"); ok {
		t.Fatalf("transparent parsed as a colour")
	}
	if _, ok := parseColour("nope"); ok {
		t.Fatalf("garbage parsed as a colour")
	}
	black, _ := parseColour("#000000")
	white, _ := parseColour("#ffffff")
	mid := fade(white, black, 0.5)
	if r, g, b := mid.RGB255(); r != 128 || g != 128 || b != 128 {
		t.Fatalf("half fade = %d,%d,%d", r, g, b)
	}
	if fade(white, black, 0) != black || fade(white, black, 1) != white {
		t.Fatalf("fade endpoints wrong")
	}
}

func mustColour(t *testing.T, hex string) tcell.Color {
	t.Helper()
	c, ok := parseColour(hex)
	if !ok {
		t.Fatalf("bad colour %q", hex)
	}
	return toTcell(c)
}

func TestBacktabCyclesBackwards(t *testing.T) {
	host, clock, _ := newTestHost(t)
	entry := widget.NewEntry(host.Document(), nil)
	w := showWindow(t, host, clock, widget.Props{"child": entry})

	key(host, tcell.KeyBacktab, 0)
	if host.Document().Focused() != entry.Element() {
		t.Fatalf("backtab from nothing should focus the last element")
	}
	key(host, tcell.KeyBacktab, 0)
	if host.Document().Focused() != w.Element() {
		t.Fatalf("backtab did not move to the window")
	}
}
