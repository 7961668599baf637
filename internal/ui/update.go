// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tildecon/internal/config"
	uiconsole "github.com/jeranaias/tildecon/internal/ui/console"
	"github.com/jeranaias/tildecon/internal/ui/styles"
)

// Update routes messages to the console window or the host scene.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.conwin.SetSize(msg.Width, msg.Height)
		m.hostInput.Width = minInt(60, msg.Width-10)
		return m, nil

	case passTickMsg:
		return m.runPass()

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.updates)

	case uiconsole.CloseRequestedMsg:
		m.eng.SetOpen(false)
		m.conwin.Blur()
		return m, nil

	case tea.MouseMsg:
		if m.eng.Open() {
			var cmd tea.Cmd
			m.conwin, cmd = m.conwin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// runPass executes one engine pass and applies any requests handlers
// raised during it.
func (m Model) runPass() (tea.Model, tea.Cmd) {
	m.eng.Tick()
	m.conwin.Refresh()

	if _, ok := m.quitFlag.take(); ok {
		return m, tea.Quit
	}
	if name, ok := m.themeSwap.take(); ok {
		m.applyTheme(name)
	}
	return m, passTick()
}

// handleKey applies the toggle policy first, then routes the press to
// whichever surface owns the keyboard.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Toggle detection sees every press. A flip consumes the key so the
	// trigger character never lands in the console input.
	if m.eng.HandleToggle(keyEventFrom(msg), m.hostInputFocused()) {
		var cmd tea.Cmd
		if m.eng.Open() {
			m.hostInput.Blur()
			cmd = m.conwin.Focus()
			m.conwin.Refresh()
		} else {
			m.conwin.Blur()
		}
		return m, cmd
	}

	if m.eng.Open() {
		var cmd tea.Cmd
		m.conwin, cmd = m.conwin.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.FocusInput):
		if m.hostInput.Focused() {
			m.hostInput.Blur()
			return m, nil
		}
		return m, m.hostInput.Focus()

	case key.Matches(msg, m.keys.QuitPlain):
		if !m.hostInput.Focused() {
			return m, tea.Quit
		}
	}

	if m.hostInput.Focused() {
		var cmd tea.Cmd
		m.hostInput, cmd = m.hostInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyTheme switches the color scheme at runtime.
func (m *Model) applyTheme(name string) {
	m.theme = styles.New(name)
	m.theme.SetSize(m.width, m.height)
	m.conwin.SetTheme(m.theme)
	m.hostInput.PromptStyle = m.theme.HostInputLabel
	m.cfg.UI.Theme = m.theme.Name
	m.statusMsg = "theme: " + m.theme.Name
}

// applyConfig adopts a reloaded config snapshot: engine options, window
// geometry, mouse mode, and theme.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.eng.Reconfigure(cfg.Console.EngineOptions())
	m.conwin.SetGeometry(cfg.Console.Left, cfg.Console.Top, cfg.Console.Width, cfg.Console.Height)
	m.conwin.SetMouseEnabled(cfg.UI.Mouse)
	if cfg.UI.Theme != m.theme.Name {
		m.applyTheme(cfg.UI.Theme)
	}
	m.conwin.Refresh()
	m.statusMsg = "config reloaded"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
