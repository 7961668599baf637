// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tildecon/internal/ui/styles"
	"github.com/jeranaias/tildecon/internal/util"
)

// View renders the host scene, replaced by the console window while it
// is open. The status bar stays visible in both states.
func (m Model) View() string {
	if m.width == 0 {
		return "starting tildecon..."
	}

	var body string
	if m.eng.Open() {
		body = m.conwin.View()
	} else {
		body = m.renderScene()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

// renderScene draws the demo world: the entity table and the focusable
// note field that exercises the toggle focus policy.
func (m Model) renderScene() string {
	var b strings.Builder

	b.WriteString(m.theme.SceneTitle.Render("tildecon demo scene"))
	b.WriteString("\n\n")
	b.WriteString(m.renderEntityTable())
	b.WriteString("\n\n")

	if m.hostInput.Focused() {
		b.WriteString(m.theme.HostInputFocused.Render(m.hostInput.View()))
	} else {
		b.WriteString(m.theme.HostInputBlurred.Render(m.hostInput.View()))
	}
	b.WriteString("\n")

	hint := m.theme.ShortcutDesc.Render("press ") +
		m.theme.ShortcutKey.Render(triggerHint(m)) +
		m.theme.ShortcutDesc.Render(" to open the console, spawn entities from it")
	b.WriteString(hint)

	return b.String()
}

// renderEntityTable lists the spawned entities. Column set follows the
// layout mode: narrow drops the spawn-time column, wide shows full IDs
// instead of the short prefix.
func (m Model) renderEntityTable() string {
	entities := m.world.List()
	if len(entities) == 0 {
		return m.theme.TableEmpty.Render("no entities - try: spawn goblin")
	}

	mode := m.theme.GetLayoutMode()
	idWidth := 10
	if mode == styles.LayoutWide {
		idWidth = 38
	}

	header := util.PadRight("ID", idWidth)
	if mode == styles.LayoutNarrow {
		header += "NAME"
	} else {
		header += util.PadRight("NAME", 20) + "SPAWNED"
	}
	rows := []string{m.theme.TableHeader.Render(header)}
	for _, e := range entities {
		id := util.ShortID(e.ID)
		if mode == styles.LayoutWide {
			id = e.ID
		}
		row := util.PadRight(id, idWidth)
		if mode == styles.LayoutNarrow {
			row += util.TruncateWidth(e.Name, 18)
		} else {
			row += util.PadRight(util.TruncateWidth(e.Name, 18), 20) +
				e.SpawnedAt.Format("15:04:05")
		}
		rows = append(rows, m.theme.TableRow.Render(row))
	}
	return strings.Join(rows, "\n")
}

// renderStatusBar draws the bottom hint line. Narrow terminals drop the
// stats section so the shortcuts stay visible.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("tildecon %s", m.version)

	hints := []string{
		m.theme.ShortcutKey.Render(triggerHint(m)) + m.theme.ShortcutDesc.Render(" console"),
		m.theme.ShortcutKey.Render("Tab") + m.theme.ShortcutDesc.Render(" note"),
		m.theme.ShortcutKey.Render("q") + m.theme.ShortcutDesc.Render(" quit"),
	}

	parts := []string{left}
	if m.theme.GetLayoutMode() != styles.LayoutNarrow {
		parts = append(parts, fmt.Sprintf("entities: %d | theme: %s", m.world.Len(), m.theme.Name))
	}
	parts = append(parts, strings.Join(hints, "  "))
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return m.theme.StatusBar.Render(strings.Join(parts, " | "))
}

// triggerHint names the first configured toggle trigger for display.
func triggerHint(m Model) string {
	triggers := m.eng.Triggers()
	if len(triggers) == 0 {
		return "`"
	}
	name := triggers[0].String()
	name = strings.TrimPrefix(name, "key:")
	return name
}
