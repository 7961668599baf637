// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
)

// =============================================================================
// MESSAGES AND COMMANDS
// =============================================================================

// passInterval is the heartbeat driving engine passes. Output queued by
// handlers lands in the scrollback at this rate even with no input.
const passInterval = 100 * time.Millisecond

// passTickMsg signals one engine pass.
type passTickMsg time.Time

// configReloadedMsg carries a fresh config snapshot from the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

// passTick schedules the next engine pass.
func passTick() tea.Cmd {
	return tea.Tick(passInterval, func(t time.Time) tea.Msg {
		return passTickMsg(t)
	})
}

// waitForConfig blocks on the watcher channel and resurfaces snapshots
// as messages. A closed channel ends the chain.
func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// keyEventFrom converts a bubbletea key press into the engine's raw key
// event form. Terminals do not report scan codes, so only the key name
// is populated.
func keyEventFrom(msg tea.KeyMsg) console.KeyEvent {
	return console.KeyEvent{Key: msg.String(), Pressed: true}
}
