// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package uiconsole provides the drop-down console window for the TUI.
//
// The Window component pairs a bubbles viewport (scrollback, pinned to
// the newest line until the user scrolls away) with a bubbles textinput
// (the command line). It owns no command state: the engine's session
// holds the buffer, scrollback, and history, and the window mirrors the
// session into its widgets. Geometry comes from the config file in the
// original pixel units and is mapped onto terminal cells, clamped to the
// visible area.
//
// # Key Types
//
//   - Window: the console overlay component
//   - KeyMap: bindings active while the console is open
//   - CloseRequestedMsg: emitted when the user presses the close key
//
// # Usage
//
//	win := uiconsole.NewWindow(eng, theme)
//	win.SetGeometry(cfg.Left, cfg.Top, cfg.Width, cfg.Height)
//	win.SetSize(termWidth, termHeight)
//	cmd := win.Focus()
package uiconsole
