// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/world"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Theme = "mono"
	eng := console.New(cfg.Console.EngineOptions())
	m := New(cfg, eng, world.New(), nil, "test")

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(Model)
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func press(t *testing.T, m Model, kt tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: kt})
	return next.(Model), cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(passTickMsg(time.Now()))
	return next.(Model), cmd
}

func TestToggleKeyOpensConsole(t *testing.T) {
	m := newTestModel(t)

	if m.eng.Open() {
		t.Fatal("console should start closed")
	}
	m = pressRune(t, m, '`')
	if !m.eng.Open() {
		t.Error("trigger key should open the console")
	}
}

func TestToggleKeyAlwaysCloses(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, '`')
	if !m.eng.Open() {
		t.Fatal("expected open console")
	}
	m = pressRune(t, m, '`')
	if m.eng.Open() {
		t.Error("trigger key should close an open console")
	}
}

func TestToggleSuppressedWhileHostInputFocused(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyTab)
	if !m.hostInput.Focused() {
		t.Fatal("tab should focus the note field")
	}

	m = pressRune(t, m, '`')
	if m.eng.Open() {
		t.Error("trigger key should not open the console while the note field is focused")
	}
	if got := m.hostInput.Value(); got != "`" {
		t.Errorf("note field = %q, want the trigger character typed into it", got)
	}
}

func TestTriggerCharacterNotTypedIntoConsole(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, '`')
	if !m.eng.Open() {
		t.Fatal("expected open console")
	}
	if got := m.conwin.InputValue(); got != "" {
		t.Errorf("console input = %q, want empty after toggling open", got)
	}
}

func TestConsoleReceivesKeysWhileOpen(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, '`')
	m = pressRune(t, m, 'h')
	m = pressRune(t, m, 'i')
	if got := m.conwin.InputValue(); got != "hi" {
		t.Errorf("console input = %q, want %q", got, "hi")
	}
	if got := m.hostInput.Value(); got != "" {
		t.Errorf("note field = %q, want empty while console owns the keyboard", got)
	}
}

func TestPassTickDrainsHandlerOutput(t *testing.T) {
	m := newTestModel(t)

	m.eng.Submit("help")
	if got := len(m.eng.Session().Lines()); got != 1 {
		t.Fatalf("expected only the echo before the pass, got %d lines", got)
	}

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("pass tick should reschedule itself")
	}
	joined := strings.Join(m.eng.Session().Lines(), "\n")
	if !strings.Contains(joined, "clear") {
		t.Errorf("help output should land after the pass, scrollback:\n%s", joined)
	}
}

func TestSpawnCommandGrowsWorld(t *testing.T) {
	m := newTestModel(t)
	m.eng.AddCommand(&console.Spec{
		Name:   "spawn",
		Parser: console.NewArgSpec(console.Arg("name", console.ArgString, true, "entity name")),
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		e := m.world.Spawn(args.String("name"))
		inv.ReplyOk("spawned " + e.Name)
	})

	m.eng.Submit("spawn goblin")
	m, _ = tick(t, m)

	if m.world.Len() != 1 {
		t.Fatalf("world has %d entities, want 1", m.world.Len())
	}
	view := m.View()
	if !strings.Contains(view, "goblin") {
		t.Error("scene view should list the spawned entity")
	}
}

func TestExitCommandQuitsProgram(t *testing.T) {
	m := newTestModel(t)

	m.eng.Submit("exit")
	_, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("pass after exit produced %T, want tea.QuitMsg", cmd())
	}
}

func TestThemeCommandSwitchesTheme(t *testing.T) {
	m := newTestModel(t)

	m.eng.Submit("theme light")
	m, _ = tick(t, m)

	if m.theme.Name != "light" {
		t.Errorf("theme = %q, want %q", m.theme.Name, "light")
	}
	joined := strings.Join(m.eng.Session().Lines(), "\n")
	if !strings.Contains(joined, "theme set to light") {
		t.Errorf("missing confirmation in scrollback:\n%s", joined)
	}
}

func TestThemeCommandReportsCurrent(t *testing.T) {
	m := newTestModel(t)

	m.eng.Submit("theme")
	m, _ = tick(t, m)

	joined := strings.Join(m.eng.Session().Lines(), "\n")
	if !strings.Contains(joined, "current theme: mono") {
		t.Errorf("missing current theme report in scrollback:\n%s", joined)
	}
}

func TestConfigReloadAppliesPromptAndGeometry(t *testing.T) {
	m := newTestModel(t)

	next := config.Default()
	next.Console.PromptSymbol = "$ "
	next.Console.HistorySize = 5
	next.UI.Theme = "mono"

	updated, _ := m.Update(configReloadedMsg{cfg: next})
	m = updated.(Model)

	if got := m.eng.Prompt(); got != "$ " {
		t.Errorf("prompt after reload = %q, want %q", got, "$ ")
	}
	if m.statusMsg != "config reloaded" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestViewShowsSceneWhenClosedAndConsoleWhenOpen(t *testing.T) {
	m := newTestModel(t)

	closedView := m.View()
	if !strings.Contains(closedView, "demo scene") {
		t.Error("closed view should show the scene")
	}

	m = pressRune(t, m, '`')
	m, _ = tick(t, m)
	openView := m.View()
	if !strings.Contains(openView, "tildecon") {
		t.Error("open view should show the console window")
	}
}

func TestViewLayoutAdaptsToWidth(t *testing.T) {
	m := newTestModel(t)
	e := m.world.Spawn("goblin")

	wide := m.View()
	if !strings.Contains(wide, "SPAWNED") {
		t.Error("wide view should show the spawn-time column")
	}
	if !strings.Contains(wide, e.ID) {
		t.Error("wide view should show the full entity ID")
	}
	if !strings.Contains(wide, "entities: 1") {
		t.Error("wide status bar should show the stats section")
	}

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = resized.(Model)
	medium := m.View()
	if !strings.Contains(medium, "SPAWNED") {
		t.Error("medium view should keep the spawn-time column")
	}
	if strings.Contains(medium, e.ID) {
		t.Error("medium view should shorten entity IDs")
	}

	resized, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 24})
	m = resized.(Model)
	narrow := m.View()
	if strings.Contains(narrow, "SPAWNED") {
		t.Error("narrow view should drop the spawn-time column")
	}
	if strings.Contains(narrow, "entities:") {
		t.Error("narrow status bar should drop the stats section")
	}
	if !strings.Contains(narrow, "goblin") {
		t.Error("narrow view should still list entity names")
	}
}
