// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package uiconsole

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/ui/styles"
)

func newTestWindow(t *testing.T) (*Window, *console.Engine) {
	t.Helper()
	eng := console.New(console.Options{})
	w := NewWindow(eng, styles.New("mono"))
	w.SetSize(120, 40)
	w.Focus()
	return w, eng
}

// typeString feeds individual rune key presses into the window.
func typeString(w *Window, s string) *Window {
	for _, r := range s {
		w, _ = w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return w
}

func pressKey(w *Window, kt tea.KeyType) (*Window, tea.Cmd) {
	return w.Update(tea.KeyMsg{Type: kt})
}

func TestWindowGeometryMapping(t *testing.T) {
	w, _ := newTestWindow(t)

	// 800x400 at the default cell size is a 100x25 window.
	if w.Width() != 100 {
		t.Errorf("Width() = %d, want 100", w.Width())
	}
	if w.Height() != 25 {
		t.Errorf("Height() = %d, want 25", w.Height())
	}
}

func TestWindowGeometryClampedToTerminal(t *testing.T) {
	eng := console.New(console.Options{})
	w := NewWindow(eng, styles.New("mono"))
	w.SetSize(40, 12)

	if w.Width() != 38 {
		t.Errorf("Width() = %d, want 38 on a 40-column terminal", w.Width())
	}
	if w.Height() != 10 {
		t.Errorf("Height() = %d, want 10 on a 12-row terminal", w.Height())
	}
}

func TestWindowGeometryFloor(t *testing.T) {
	eng := console.New(console.Options{})
	w := NewWindow(eng, styles.New("mono"))
	w.SetGeometry(0, 0, 40, 32)
	w.SetSize(120, 40)

	if w.Width() < minWindowCols {
		t.Errorf("Width() = %d, want at least %d", w.Width(), minWindowCols)
	}
	if w.Height() < minWindowRows {
		t.Errorf("Height() = %d, want at least %d", w.Height(), minWindowRows)
	}
}

func TestWindowSubmitEchoesCommand(t *testing.T) {
	w, eng := newTestWindow(t)

	w = typeString(w, "help")
	w, _ = pressKey(w, tea.KeyEnter)

	lines := eng.Session().Lines()
	if len(lines) != 1 || lines[0] != "> help" {
		t.Fatalf("scrollback = %v, want [\"> help\"]", lines)
	}
	if got := w.InputValue(); got != "" {
		t.Errorf("input after submit = %q, want empty", got)
	}

	// The help output lands on the next engine pass.
	eng.Tick()
	w.Refresh()

	lines = eng.Session().Lines()
	if len(lines) < 2 {
		t.Fatalf("expected help output after Tick, got %v", lines)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "help") || !strings.Contains(joined, "clear") {
		t.Errorf("help listing missing built-ins: %v", lines)
	}
}

func TestWindowBlankSubmitKeepsInput(t *testing.T) {
	w, eng := newTestWindow(t)

	w = typeString(w, "   ")
	w, _ = pressKey(w, tea.KeyEnter)

	lines := eng.Session().Lines()
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("scrollback = %v, want one empty line", lines)
	}
	if got := w.InputValue(); got != "   " {
		t.Errorf("input after blank submit = %q, want %q", got, "   ")
	}
}

func TestWindowHistoryNavigation(t *testing.T) {
	w, eng := newTestWindow(t)

	w = typeString(w, "clear")
	w, _ = pressKey(w, tea.KeyEnter)
	w = typeString(w, "help")
	w, _ = pressKey(w, tea.KeyEnter)
	eng.Tick()

	w, _ = pressKey(w, tea.KeyUp)
	if got := w.InputValue(); got != "help" {
		t.Errorf("after one up, input = %q, want %q", got, "help")
	}

	w, _ = pressKey(w, tea.KeyUp)
	if got := w.InputValue(); got != "clear" {
		t.Errorf("after two ups, input = %q, want %q", got, "clear")
	}

	w, _ = pressKey(w, tea.KeyDown)
	if got := w.InputValue(); got != "help" {
		t.Errorf("after down, input = %q, want %q", got, "help")
	}
}

func TestWindowHistoryDraftRestored(t *testing.T) {
	w, _ := newTestWindow(t)

	w = typeString(w, "help")
	w, _ = pressKey(w, tea.KeyEnter)

	w = typeString(w, "draft in progress")
	w, _ = pressKey(w, tea.KeyUp)
	if got := w.InputValue(); got != "help" {
		t.Fatalf("after up, input = %q, want %q", got, "help")
	}

	w, _ = pressKey(w, tea.KeyDown)
	if got := w.InputValue(); got != "draft in progress" {
		t.Errorf("draft not restored, input = %q", got)
	}
}

func TestWindowClearKey(t *testing.T) {
	w, eng := newTestWindow(t)

	w = typeString(w, "help")
	w, _ = pressKey(w, tea.KeyEnter)
	if len(eng.Session().Lines()) == 0 {
		t.Fatal("expected scrollback before clear")
	}

	w, _ = pressKey(w, tea.KeyCtrlL)
	if got := eng.Session().Lines(); len(got) != 0 {
		t.Errorf("scrollback after ctrl+l = %v, want empty", got)
	}
}

func TestWindowCloseKeyEmitsMessage(t *testing.T) {
	w, _ := newTestWindow(t)

	_, cmd := pressKey(w, tea.KeyEsc)
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(CloseRequestedMsg); !ok {
		t.Errorf("esc produced %T, want CloseRequestedMsg", cmd())
	}
}

func TestWindowViewContainsTitleAndPrompt(t *testing.T) {
	w, _ := newTestWindow(t)

	view := w.View()
	if !strings.Contains(view, "tildecon") {
		t.Error("view should contain the window title")
	}
	if !strings.Contains(view, ">") {
		t.Error("view should contain the prompt symbol")
	}
}
