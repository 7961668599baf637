// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// registerBuiltins installs the commands every console ships with. They go
// through the same AddCommand path as host commands, so a host can
// overwrite any of them (with the usual duplicate warning).
func (e *Engine) registerBuiltins() {
	e.AddCommand(&Spec{
		Name:   "help",
		Parser: NewArgSpec(Arg("command", ArgString, false, "command to describe")),
		Help:   "list available commands, or describe one",
	}, e.runHelp)

	e.AddCommand(&Spec{
		Name:   "clear",
		Parser: NewArgSpec(),
		Help:   "clear the scrollback",
	}, e.runClear)

	e.AddCommand(&Spec{
		Name:   "exit",
		Parser: NewArgSpec(),
		Help:   "quit the host application",
	}, e.runExit)
}

// runHelp lists all registered commands, or renders one command's usage,
// description, and LongHelp body.
func (e *Engine) runHelp(inv *Invocation) {
	args, ok := inv.Take()
	if !ok {
		return
	}

	if args.Has("command") {
		name := args.String("command")
		spec, found := e.registry.Lookup(name)
		if !found {
			inv.ReplyFailed("unknown command: " + name)
			return
		}
		inv.Reply(spec.UsageLine())
		if spec.Help != "" {
			inv.Reply(spec.Help)
		}
		if spec.LongHelp != "" {
			for _, line := range strings.Split(e.renderLongHelp(spec.LongHelp), "\n") {
				inv.Reply(line)
			}
		}
		return
	}

	names := e.registry.Names()
	width := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	for _, name := range names {
		spec, _ := e.registry.Lookup(name)
		inv.Reply(runewidth.FillRight(name, width) + "  " + spec.Help)
	}
}

// runClear empties the scrollback. Lines already queued this pass still
// drain after the clear.
func (e *Engine) runClear(inv *Invocation) {
	if _, ok := inv.Take(); !ok {
		return
	}
	e.session.Clear()
}

// runExit asks the host to shut down.
func (e *Engine) runExit(inv *Invocation) {
	if _, ok := inv.Take(); !ok {
		return
	}
	if e.quit == nil {
		inv.ReplyFailed("exit is not available in this host")
		return
	}
	e.quit()
}
