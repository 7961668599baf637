// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the tildecon TUI.
//
// A Theme bundles every Lip Gloss style the interface uses: the console
// window frame, scrollback line styles, the prompt, the demo scene table,
// and the status bar. Themes are created by name (dark, light, mono) to
// match the ui.theme config value; colors adapt to the terminal background
// through lipgloss.AdaptiveColor.
//
// # Key Types
//
//   - Theme: all styled components plus terminal capability flags
//   - LayoutMode: responsive breakpoints derived from terminal width
//
// # Usage
//
//	theme := styles.New(cfg.UI.Theme)
//	theme.SetSize(width, height)
//	line := theme.RenderScrollbackLine("> ", "> help")
package styles
