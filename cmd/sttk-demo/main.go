// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sttk-demo/main.go
// Summary: Terminal demo of the toolkit: draggable windows with leaf widgets.
// Usage: sttk-demo [-windows N] [-log file] [-verbose-logs] [-config-dump]
// Notes: Ctrl-C quits; q quits unless a text entry has focus.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/framegrace/sttk/config"
	"github.com/framegrace/sttk/dom"
	"github.com/framegrace/sttk/eventloop"
	"github.com/framegrace/sttk/term"
	"github.com/framegrace/sttk/widget"
)

func main() {
	logFlag := flag.String("log", "", "Log file (default: log.file from the config)")
	windows := flag.Int("windows", 0, "Number of demo windows (default: demo.windows from the config)")
	verboseLogs := flag.Bool("verbose-logs", false, "Log every gesture and transition")
	dump := flag.Bool("config-dump", false, "Print the effective configuration and exit")
	flag.Parse()

	cfg := config.System()
	if err := config.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "sttk-demo: config: %v (using defaults)\n", err)
	}
	if *dump {
		if err := config.Dump(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "sttk-demo: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sttk-demo: stdout is not a terminal")
		os.Exit(1)
	}

	logName := *logFlag
	if logName == "" {
		logName = cfg.GetString("log", "file", "sttk.log")
	}
	if logPath, err := config.LogPath(logName); err == nil && logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sttk-demo: open log: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	widget.ApplyConfig(cfg)
	if *verboseLogs {
		widget.SetVerboseLogging(true)
	}
	count := *windows
	if count <= 0 {
		count = cfg.GetInt("demo", "windows", 3)
	}

	if err := run(cfg, count); err != nil {
		log.Printf("Demo: exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "sttk-demo: %v\n", err)
		os.Exit(1)
	}
	log.Println("Demo: stopped cleanly")
}

func run(cfg config.Config, windows int) error {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := term.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer driver.Fini()
	if cfg.GetBool("terminal", "mouse", true) {
		driver.EnableMouse()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := eventloop.New(0)
	doc := dom.NewDocument(loop, 0, 0)
	host := term.NewHost(driver, doc, term.OptionsFromConfig(cfg))
	host.SetKeyFilter(func(ev *tcell.EventKey) bool {
		if ev.Key() == tcell.KeyCtrlC {
			cancel()
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			if f := doc.Focused(); f == nil || f.Tag() != "input" {
				cancel()
				return true
			}
		}
		return false
	})

	title := cfg.GetString("demo", "title", "sttk")
	loop.Post(func() {
		buildDemo(doc, title, windows)
		host.Render()
	})

	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	err = host.Run(ctx)
	<-loopErr
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
