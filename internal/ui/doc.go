// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
//
// The host is a Bubble Tea program: a demo scene (a table of spawned
// world entities and a focusable note field) with the developer console
// overlaid when open. Every key press runs through the engine's toggle
// policy first; while the note field is focused the trigger key types
// into it instead of opening the console, and while the console is open
// the trigger always closes it.
//
// A recurring tick drives Engine.Tick so output queued by command
// handlers reaches the scrollback without further input. The config
// watcher channel feeds reloaded snapshots into the running program, and
// the theme command switches color schemes at runtime.
//
// # Key Types
//
//   - Model: the top-level Bubble Tea model
//   - KeyMap: host scene bindings
//
// # Usage
//
//	m := ui.New(cfg, eng, world.New(), watcherUpdates, version)
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	_, err := p.Run()
package ui
