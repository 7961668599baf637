// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
//
// This file defines the keyboard bindings for the host scene. Bindings
// active inside the console window live in the uiconsole package; the
// configured toggle key is handled by the engine before any of these.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the host scene.
type KeyMap struct {
	Quit       key.Binding
	QuitPlain  key.Binding
	FocusInput key.Binding
}

// DefaultKeyMap returns the default host scene bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		QuitPlain: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "focus note field"),
		),
	}
}

// ShortHelp returns the bindings to show in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.QuitPlain}
}

// FullHelp returns all binding groups.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusInput},
		{k.QuitPlain, k.Quit},
	}
}
