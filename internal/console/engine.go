// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"fmt"
	"os"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a new Engine. Zero values select the defaults noted
// on each field.
type Options struct {
	// HistorySize bounds the submitted lines kept for navigation
	// (default 50; the scratch slot is extra)
	HistorySize int

	// Prompt is echoed before each submitted line (default "> ")
	Prompt string

	// Triggers open and close the console (default the grave key "`")
	Triggers []Trigger

	// Warnf receives non-fatal diagnostics (default stderr)
	Warnf func(format string, args ...any)

	// Quit is invoked by the exit command; when nil, exit reports that
	// the host does not support quitting
	Quit func()

	// RenderLongHelp renders a command's Markdown LongHelp body for
	// display (default: the raw text)
	RenderLongHelp func(markdown string) string
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine ties the registry, session, and event queues together and runs
// the per-pass cycle. All methods must be called from the host loop; the
// engine itself starts no goroutines and never blocks.
type Engine struct {
	registry *Registry
	session  *Session
	open     bool

	prompt   string
	triggers []Trigger

	entered  *Queue[CommandEntered]
	printed  *Queue[PrintLine]
	drain    *Reader[PrintLine]
	bindings []*binding

	warnf          func(format string, args ...any)
	quit           func()
	renderLongHelp func(string) string
}

// New creates an engine with the built-in commands registered.
func New(opts Options) *Engine {
	if opts.HistorySize <= 0 {
		opts.HistorySize = 50
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.Triggers == nil {
		opts.Triggers = []Trigger{KeyTrigger("`")}
	}
	if opts.Warnf == nil {
		opts.Warnf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		}
	}
	if opts.RenderLongHelp == nil {
		opts.RenderLongHelp = func(md string) string { return md }
	}

	e := &Engine{
		registry:       NewRegistry(),
		session:        NewSession(opts.HistorySize),
		prompt:         opts.Prompt,
		triggers:       opts.Triggers,
		entered:        NewQueue[CommandEntered](),
		printed:        NewQueue[PrintLine](),
		warnf:          opts.Warnf,
		quit:           opts.Quit,
		renderLongHelp: opts.RenderLongHelp,
	}
	e.registry.warn = e.warnf
	e.drain = e.printed.Subscribe()
	e.registerBuiltins()
	return e
}

// Register adds a command spec without binding a handler. Duplicate names
// warn and overwrite.
func (e *Engine) Register(spec *Spec) {
	e.registry.Register(spec)
}

// Bind subscribes a handler to CommandEntered events whose name matches.
// Binding does not register the name; pair it with Register, or use
// AddCommand for both at once.
func (e *Engine) Bind(name string, fn HandlerFunc) {
	e.bindings = append(e.bindings, &binding{
		name:   name,
		fn:     fn,
		reader: e.entered.Subscribe(),
	})
}

// AddCommand registers a spec and binds its handler.
func (e *Engine) AddCommand(spec *Spec, fn HandlerFunc) {
	e.Register(spec)
	e.Bind(spec.Name, fn)
}

// SubscribeEntered returns a read-only cursor over the CommandEntered
// broadcast, for host-side observers.
func (e *Engine) SubscribeEntered() *Reader[CommandEntered] {
	return e.entered.Subscribe()
}

// Print queues one line of console output.
func (e *Engine) Print(text string) {
	e.printed.Send(PrintLine{Text: text})
}

// Printf queues one formatted line of console output.
func (e *Engine) Printf(format string, args ...any) {
	e.Print(fmt.Sprintf(format, args...))
}

// Tick runs the tail of one pass: handler bindings consume their pending
// CommandEntered events, queued PrintLine output drains into scrollback in
// emission order, and both queues rotate. Hosts call it exactly once per
// pass, after delivering input.
func (e *Engine) Tick() {
	for _, b := range e.bindings {
		b.run(e)
	}
	for _, pl := range e.drain.Read() {
		e.session.Append(pl.Text)
	}
	e.entered.Update()
	e.printed.Update()
}

// HandleToggle applies the open/close policy to one raw key event and
// reports whether the state flipped. An open console always closes on a
// trigger, wherever focus is; a closed one opens only when no host text
// input claims the keyboard.
func (e *Engine) HandleToggle(ev KeyEvent, hostInputFocused bool) bool {
	if !ShouldToggle(ev, e.triggers) {
		return false
	}
	if e.open {
		e.open = false
		return true
	}
	if hostInputFocused {
		return false
	}
	e.open = true
	return true
}

// Open reports whether the console is currently open.
func (e *Engine) Open() bool {
	return e.open
}

// SetOpen forces the open state, bypassing the toggle policy.
func (e *Engine) SetOpen(open bool) {
	e.open = open
}

// Session exposes the session state for hosts.
func (e *Engine) Session() *Session {
	return e.session
}

// Registry exposes the command registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Prompt returns the configured prompt symbol.
func (e *Engine) Prompt() string {
	return e.prompt
}

// Triggers returns the configured toggle triggers.
func (e *Engine) Triggers() []Trigger {
	return e.triggers
}

// Warnf emits a non-fatal diagnostic through the configured hook.
func (e *Engine) Warnf(format string, args ...any) {
	e.warnf(format, args...)
}

// Reconfigure applies the non-zero fields of opts to a live engine. Hosts
// call it when the configuration file changes; history shrinks evict the
// oldest entries.
func (e *Engine) Reconfigure(opts Options) {
	if opts.Prompt != "" {
		e.prompt = opts.Prompt
	}
	if opts.Triggers != nil {
		e.triggers = opts.Triggers
	}
	if opts.HistorySize > 0 {
		e.session.History().Resize(opts.HistorySize)
	}
	if opts.Warnf != nil {
		e.warnf = opts.Warnf
		e.registry.warn = opts.Warnf
	}
	if opts.Quit != nil {
		e.quit = opts.Quit
	}
	if opts.RenderLongHelp != nil {
		e.renderLongHelp = opts.RenderLongHelp
	}
}
