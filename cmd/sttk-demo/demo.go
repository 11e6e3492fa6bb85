// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sttk-demo/demo.go
// Summary: Builds the demo windows: a greeter, a counter and a grid.

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/widget"
)

type demoBuilder func(doc *dom.Document, title string) *widget.Window

var demoBuilders = []demoBuilder{greeterWindow, counterWindow, gridWindow}

// buildDemo opens n windows, cycling through the builders and cascading
// their positions.
func buildDemo(doc *dom.Document, title string, n int) []*widget.Window {
	var out []*widget.Window
	for i := 0; i < n; i++ {
		w := demoBuilders[i%len(demoBuilders)](doc, title)
		w.SetX(float64(16 + 48*i))
		w.SetY(float64(16 + 32*i))
		if err := w.ShowAll(doc.Body()); err != nil {
			log.Printf("Demo: show window %d: %v", i, err)
			continue
		}
		out = append(out, w)
	}
	log.Printf("Demo: opened %d windows", len(out))
	return out
}

func greeterWindow(doc *dom.Document, title string) *widget.Window {
	greeting := widget.NewLabel(doc, widget.Props{"text": "Who is there?"})
	name := widget.NewEntry(doc, widget.Props{"placeholder": "Your name"})
	greet := widget.NewButton(doc, widget.Props{"text": "Greet"})
	reset := widget.NewButton(doc, widget.Props{"text": "Clear"})

	sayHello := func(*widget.Event) {
		who := strings.TrimSpace(name.Text())
		if who == "" {
			who = "stranger"
		}
		greeting.SetText("Hello, " + who + "!")
	}
	greet.Connect(widget.SignalActivate, sayHello)
	name.Connect(widget.SignalConfirm, sayHello)
	reset.Connect(widget.SignalActivate, func(*widget.Event) {
		name.SetText("")
		greeting.SetText("Who is there?")
	})

	buttons := widget.NewBox(doc, nil)
	buttons.Append(greet)
	buttons.Append(reset)

	body := widget.NewBox(doc, widget.Props{"orientation": widget.Vertical})
	body.Append(greeting)
	body.Append(name)
	body.Append(buttons)

	return widget.NewWindow(doc, widget.Props{
		"title":  title + ": greeter",
		"width":  320,
		"height": 144,
		"child":  body,
	})
}

func counterWindow(doc *dom.Document, title string) *widget.Window {
	count := 0
	label := widget.NewLabel(doc, widget.Props{"text": "0 clicks"})
	more := widget.NewButton(doc, widget.Props{"text": "+1"})
	less := widget.NewButton(doc, widget.Props{"text": "-1"})
	update := func(delta int) widget.Callback {
		return func(*widget.Event) {
			count += delta
			label.SetText(fmt.Sprintf("%d clicks", count))
		}
	}
	more.Connect(widget.SignalActivate, update(1))
	less.Connect(widget.SignalActivate, update(-1))

	body := widget.NewBox(doc, widget.Props{"orientation": widget.Vertical})
	body.Append(label)
	row := widget.NewBox(doc, nil)
	row.Append(less)
	row.Append(more)
	body.Append(row)

	w := widget.NewWindow(doc, widget.Props{
		"title":  title + ": counter",
		"width":  240,
		"height": 96,
		"child":  body,
	})
	w.Connect(widget.SignalResize, func(ev *widget.Event) {
		log.Printf("Demo: counter resized to %.0fx%.0f", ev.WindowWidth, ev.WindowHeight)
	})
	return w
}

func gridWindow(doc *dom.Document, title string) *widget.Window {
	grid := widget.NewGrid(doc, nil)
	header := widget.NewLabel(doc, widget.Props{"text": "Grid layout", "selectable": true})
	grid.Add(header, 0, 0, 2, 1)
	for i, text := range []string{"north", "south", "east", "west"} {
		b := widget.NewButton(doc, widget.Props{"text": text})
		b.Connect(widget.SignalActivate, func(*widget.Event) { header.SetText("picked " + text) })
		grid.Add(b, i%2, 1+i/2, 1, 1)
	}
	return widget.NewWindow(doc, widget.Props{
		"title":  title + ": grid",
		"width":  288,
		"height": 96,
		"child":  grid,
	})
}
