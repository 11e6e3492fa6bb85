// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/host.go
// Summary: Binds a document to a terminal screen: input in, cells out.
// Usage: host := NewHost(driver, doc, OptionsFromConfig(cfg)); go loop.Run(ctx); host.Run(ctx).
// Notes: HandleEvent and Render touch the document and must run on the event
//   loop. Run only pumps events and frame ticks onto it.

package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/sttk/config"
	"github.com/framegrace/sttk/dom"
)

// DefaultFrameInterval paces redraws at roughly 60 fps.
const DefaultFrameInterval = 16 * time.Millisecond

// Options size terminal cells in document px.
type Options struct {
	CellWidth     float64
	CellHeight    float64
	FrameInterval time.Duration
}

// DefaultOptions returns 8x16 px cells.
func DefaultOptions() Options {
	return Options{CellWidth: 8, CellHeight: 16, FrameInterval: DefaultFrameInterval}
}

// OptionsFromConfig reads the terminal section.
func OptionsFromConfig(cfg config.Config) Options {
	def := DefaultOptions()
	return Options{
		CellWidth:     cfg.GetFloat("terminal", "cell_width_px", def.CellWidth),
		CellHeight:    cfg.GetFloat("terminal", "cell_height_px", def.CellHeight),
		FrameInterval: def.FrameInterval,
	}
}

// KeyFilter sees every key before the document. Returning true consumes it.
type KeyFilter func(ev *tcell.EventKey) bool

// Host renders a document onto a screen driver and feeds it input.
type Host struct {
	driver ScreenDriver
	doc    *dom.Document
	opts   Options

	filter KeyFilter

	// pointer state in document px
	buttons     tcell.ButtonMask
	pointerX    float64
	pointerY    float64
	havePointer bool
	pressTarget string

	frames int
}

// NewHost binds doc to driver and sizes the viewport to the screen.
func NewHost(driver ScreenDriver, doc *dom.Document, opts Options) *Host {
	def := DefaultOptions()
	if opts.CellWidth <= 0 {
		opts.CellWidth = def.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = def.CellHeight
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = def.FrameInterval
	}
	h := &Host{driver: driver, doc: doc, opts: opts}
	h.SyncViewport()
	return h
}

// Document returns the hosted document.
func (h *Host) Document() *dom.Document { return h.doc }

// SetKeyFilter installs a filter that runs before key dispatch.
func (h *Host) SetKeyFilter(f KeyFilter) { h.filter = f }

// SyncViewport sets the document viewport from the screen size.
func (h *Host) SyncViewport() {
	w, ht := h.driver.Size()
	h.resize(w, ht)
}

func (h *Host) resize(cols, rows int) {
	h.doc.SetViewport(float64(cols)*h.opts.CellWidth, float64(rows)*h.opts.CellHeight)
}

// Frames reports how many times Render has drawn.
func (h *Host) Frames() int { return h.frames }

// Cursor returns the pointer shape requested under the last pointer position.
func (h *Host) Cursor() string {
	if !h.havePointer {
		return "auto"
	}
	for n := h.doc.ElementAt(h.pointerX, h.pointerY); n != nil; n = n.Parent() {
		if c := n.ComputedStyle("cursor"); c != "" && c != "auto" {
			return c
		}
	}
	return "auto"
}

// Run pumps screen events and frame ticks onto the document's scheduler
// until ctx is cancelled. It does not finalize the screen.
func (h *Host) Run(ctx context.Context) error {
	sched := h.doc.Scheduler()
	go func() {
		for {
			ev := h.driver.PollEvent()
			if ev == nil {
				return
			}
			if ctx.Err() != nil {
				return
			}
			sched.Post(func() {
				h.HandleEvent(ev)
				h.Render()
			})
		}
	}()

	ticker := time.NewTicker(h.opts.FrameInterval)
	defer ticker.Stop()
	log.Printf("Host: running (cell %.0fx%.0f px, frame %v)", h.opts.CellWidth, h.opts.CellHeight, h.opts.FrameInterval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sched.Post(h.Render)
		}
	}
}
