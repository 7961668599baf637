// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package uiconsole provides the drop-down console window for the TUI.
package uiconsole

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/ui/styles"
	"github.com/jeranaias/tildecon/internal/util"
)

// Nominal cell size used to map the configured pixel geometry onto
// terminal cells. 800x400 becomes a 100x25 cell window.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// Window size floor so a tiny terminal still shows something usable.
const (
	minWindowCols = 20
	minWindowRows = 5
)

// CloseRequestedMsg is emitted when the close key is pressed inside the
// console window.
type CloseRequestedMsg struct{}

// =============================================================================
// CONSOLE WINDOW COMPONENT
// =============================================================================

// Window renders the console over the host scene: a framed scrollback
// viewport with a command input line underneath. All command state lives
// in the engine; the window is a view over the engine's session.
type Window struct {
	eng   *console.Engine
	theme *styles.Theme
	keys  KeyMap

	viewport viewport.Model
	input    textinput.Model

	// Configured geometry in the host units (pixels).
	geoLeft, geoTop     float64
	geoWidth, geoHeight float64

	// Derived placement in cells.
	left, top     int
	width, height int

	termWidth  int
	termHeight int
	ready      bool

	// follow keeps the viewport pinned to the newest line until the
	// user scrolls up.
	follow bool
}

// NewWindow creates a console window bound to the engine.
func NewWindow(eng *console.Engine, theme *styles.Theme) *Window {
	vp := viewport.New(80, 16)
	vp.MouseWheelEnabled = true

	in := textinput.New()
	in.Prompt = eng.Prompt()
	in.Placeholder = "type help"
	in.PromptStyle = theme.Prompt
	in.TextStyle = theme.InputText
	in.PlaceholderStyle = theme.InputPlaceholder

	w := &Window{
		eng:       eng,
		theme:     theme,
		keys:      DefaultKeyMap(),
		viewport:  vp,
		input:     in,
		geoWidth:  800,
		geoHeight: 400,
		follow:    true,
	}
	return w
}

// SetTheme swaps the theme, restyling the input widget.
func (w *Window) SetTheme(theme *styles.Theme) {
	w.theme = theme
	w.input.PromptStyle = theme.Prompt
	w.input.TextStyle = theme.InputText
	w.input.PlaceholderStyle = theme.InputPlaceholder
	w.Refresh()
}

// SetGeometry records the configured window placement. Values use the
// same units as the config file; they are mapped to cells on SetSize.
func (w *Window) SetGeometry(left, top, width, height float64) {
	w.geoLeft, w.geoTop = left, top
	w.geoWidth, w.geoHeight = width, height
	if w.termWidth > 0 {
		w.SetSize(w.termWidth, w.termHeight)
	}
}

// SetMouseEnabled controls wheel scrolling in the scrollback viewport.
func (w *Window) SetMouseEnabled(on bool) {
	w.viewport.MouseWheelEnabled = on
}

// SetSize recomputes the window layout for a terminal of the given size.
func (w *Window) SetSize(termWidth, termHeight int) {
	w.termWidth, w.termHeight = termWidth, termHeight

	w.left = int(w.geoLeft / cellWidthPx)
	w.top = int(w.geoTop / cellHeightPx)
	w.width = int(w.geoWidth / cellWidthPx)
	w.height = int(w.geoHeight / cellHeightPx)

	// Clamp the placement so the frame always fits the terminal.
	if w.left > termWidth-minWindowCols {
		w.left = maxInt(0, termWidth-minWindowCols)
	}
	if w.top > termHeight-minWindowRows {
		w.top = maxInt(0, termHeight-minWindowRows)
	}
	if w.width > termWidth-w.left-2 {
		w.width = termWidth - w.left - 2
	}
	if w.height > termHeight-w.top-2 {
		w.height = termHeight - w.top - 2
	}
	if w.width < minWindowCols {
		w.width = minWindowCols
	}
	if w.height < minWindowRows {
		w.height = minWindowRows
	}

	// Interior: frame padding eats two columns, title and input line
	// eat two rows.
	w.viewport.Width = maxInt(1, w.width-2)
	w.viewport.Height = maxInt(1, w.height-2)
	w.input.Width = maxInt(1, w.width-len(w.eng.Prompt())-3)

	w.ready = true
	w.Refresh()
}

// Focus gives keyboard focus to the command input.
func (w *Window) Focus() tea.Cmd {
	w.input.Prompt = w.eng.Prompt()
	return w.input.Focus()
}

// Blur removes keyboard focus from the command input.
func (w *Window) Blur() {
	w.input.Blur()
}

// Refresh re-renders the scrollback into the viewport. Call after engine
// passes so drained output becomes visible.
func (w *Window) Refresh() {
	prompt := w.eng.Prompt()
	w.input.Prompt = prompt

	lines := w.eng.Session().Lines()
	rendered := make([]string, len(lines))
	for i, line := range lines {
		// Truncate before styling so ANSI sequences stay intact.
		rendered[i] = w.theme.RenderScrollbackLine(prompt, util.TruncateWidth(line, w.viewport.Width))
	}
	w.viewport.SetContent(strings.Join(rendered, "\n"))

	if w.follow {
		w.viewport.GotoBottom()
	}
}

// Update handles input while the console is open.
func (w *Window) Update(msg tea.Msg) (*Window, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Submit):
			w.submit()
			return w, nil

		case key.Matches(msg, w.keys.HistoryUp):
			w.eng.Session().NavigateUp()
			w.syncInputFromSession()
			return w, nil

		case key.Matches(msg, w.keys.HistoryDown):
			w.eng.Session().NavigateDown()
			w.syncInputFromSession()
			return w, nil

		case key.Matches(msg, w.keys.Clear):
			w.eng.Session().Clear()
			w.Refresh()
			return w, nil

		case key.Matches(msg, w.keys.Close):
			return w, func() tea.Msg { return CloseRequestedMsg{} }

		case key.Matches(msg, w.keys.PageUp):
			w.follow = false
			w.viewport.ViewUp()
			return w, nil

		case key.Matches(msg, w.keys.PageDown):
			w.viewport.ViewDown()
			if w.viewport.AtBottom() {
				w.follow = true
			}
			return w, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		w.viewport, cmd = w.viewport.Update(msg)
		w.follow = w.viewport.AtBottom()
		return w, cmd
	}

	// Everything else edits the input line. The session buffer mirrors
	// the widget so history navigation can snapshot the draft.
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	w.eng.Session().SetBuffer(w.input.Value())
	return w, cmd
}

// submit runs the buffered line through the engine and resets the input
// to whatever the session left behind (empty after a dispatch, untouched
// after a blank line).
func (w *Window) submit() {
	w.eng.SubmitBuffer()
	w.input.SetValue(w.eng.Session().Buffer())
	w.input.CursorEnd()
	w.follow = true
	w.Refresh()
}

// syncInputFromSession loads the session buffer into the input widget
// with the cursor at the end, matching recall behavior.
func (w *Window) syncInputFromSession() {
	w.input.SetValue(w.eng.Session().Buffer())
	w.input.CursorEnd()
}

// View renders the framed console window at its configured offset.
func (w *Window) View() string {
	if !w.ready {
		return ""
	}

	title := w.theme.ConsoleTitle.Render("tildecon")
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		w.viewport.View(),
		w.input.View(),
	)

	box := w.theme.ConsoleFrame.Width(w.width).Render(content)
	if w.left > 0 || w.top > 0 {
		box = lipgloss.NewStyle().MarginLeft(w.left).MarginTop(w.top).Render(box)
	}
	return box
}

// Width returns the current window width in cells.
func (w *Window) Width() int { return w.width }

// Height returns the current window height in cells.
func (w *Window) Height() int { return w.height }

// InputValue returns the live input line, mainly for tests.
func (w *Window) InputValue() string { return w.input.Value() }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
