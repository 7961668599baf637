// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the terminal host application for tildecon.
package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
	uiconsole "github.com/jeranaias/tildecon/internal/ui/console"
	"github.com/jeranaias/tildecon/internal/ui/styles"
	"github.com/jeranaias/tildecon/internal/world"
)

// =============================================================================
// HOST SIGNALS
// =============================================================================

// hostSignal carries one pending request from a command handler, which
// runs inside Tick, out to the Elm update loop. Handlers cannot mutate
// the model directly because bubbletea passes it by value.
type hostSignal struct {
	mu  sync.Mutex
	val string
	set bool
}

func (s *hostSignal) raise(v string) {
	s.mu.Lock()
	s.val = v
	s.set = true
	s.mu.Unlock()
}

func (s *hostSignal) take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	s.set = false
	v := s.val
	s.val = ""
	return v, true
}

// =============================================================================
// HOST MODEL
// =============================================================================

// Model is the Bubble Tea model for the host application: a demo scene
// (entity table plus a focusable note field) with the console overlaid
// when open.
type Model struct {
	// Configuration
	cfg *config.Config

	// Console engine and window
	eng    *console.Engine
	conwin *uiconsole.Window

	// Demo scene
	world     *world.World
	hostInput textinput.Model

	// Styling
	theme *styles.Theme

	// Key bindings
	keys KeyMap

	// Config hot reload (nil when no watcher is running)
	updates <-chan *config.Config

	// Requests raised by command handlers during Tick
	quitFlag  *hostSignal
	themeSwap *hostSignal

	// Dimensions
	width  int
	height int

	version   string
	statusMsg string
}

// New creates the host model. The engine gains the TUI-specific hooks
// (quit, Markdown help rendering) and the theme command.
func New(cfg *config.Config, eng *console.Engine, w *world.World, updates <-chan *config.Config, version string) Model {
	theme := styles.New(cfg.UI.Theme)

	conwin := uiconsole.NewWindow(eng, theme)
	conwin.SetGeometry(cfg.Console.Left, cfg.Console.Top, cfg.Console.Width, cfg.Console.Height)
	conwin.SetMouseEnabled(cfg.UI.Mouse)

	hostInput := textinput.New()
	hostInput.Prompt = "note: "
	hostInput.Placeholder = "host scene input"
	hostInput.PromptStyle = theme.HostInputLabel
	hostInput.CharLimit = 120

	m := Model{
		cfg:       cfg,
		eng:       eng,
		conwin:    conwin,
		world:     w,
		hostInput: hostInput,
		theme:     theme,
		keys:      DefaultKeyMap(),
		updates:   updates,
		quitFlag:  &hostSignal{},
		themeSwap: &hostSignal{},
		version:   version,
	}

	eng.Reconfigure(console.Options{
		Quit:           func() { m.quitFlag.raise("") },
		RenderLongHelp: newHelpRenderer(),
	})
	registerThemeCommand(eng, cfg, m.themeSwap)

	return m
}

// Init schedules the pass heartbeat, the cursor blink, and the config
// reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{passTick(), textinput.Blink}
	if m.updates != nil {
		cmds = append(cmds, waitForConfig(m.updates))
	}
	return tea.Batch(cmds...)
}

// hostInputFocused reports whether the scene's note field claims the
// keyboard, which suppresses opening the console.
func (m Model) hostInputFocused() bool {
	return m.hostInput.Focused() && !m.eng.Open()
}

// newHelpRenderer builds the Markdown renderer for long help bodies.
// When the renderer cannot be constructed the raw text passes through.
func newHelpRenderer() func(string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, rerr := renderer.Render(md)
		if rerr != nil {
			return md
		}
		return strings.Trim(out, "\n")
	}
}

// registerThemeCommand adds the theme command: with no argument it
// reports the active theme, with one it requests a switch that the
// update loop applies on the same pass.
func registerThemeCommand(eng *console.Engine, cfg *config.Config, swap *hostSignal) {
	spec := &console.Spec{
		Name:   "theme",
		Parser: console.NewArgSpec(console.Enum("name", false, "theme to switch to", "dark", "light", "mono")),
		Help:   "show or switch the color theme",
	}
	eng.AddCommand(spec, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		if !args.Has("name") {
			inv.Replyf("current theme: %s", cfg.UI.Theme)
			inv.Ok()
			return
		}
		name := args.String("name")
		swap.raise(name)
		inv.ReplyOk("theme set to " + name)
	})
}
