// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
//
// This package is the core of tildecon: it tokenizes raw input lines,
// resolves them against a registry of commands, routes results through
// event queues, and maintains the interactive session state (edit buffer,
// scrollback, history ring, open/closed flag). It contains no rendering
// and no I/O; hosts such as the TUI and the REPL drive it once per
// scheduling pass.
//
// # Key Types
//
//   - Engine: owns the registry, session, and event queues; one per console
//   - Registry: name-keyed command table with sorted listing
//   - Spec: a registered command (name, argument parser, help text)
//   - Session: edit buffer, scrollback, and history ring
//   - Queue / Reader: double-buffered broadcast event queues
//   - Invocation: a matched command delivery handed to a handler
//   - Lexer: shell-like tokenizer for raw input lines
//
// # Pass Model
//
// All engine state is single-threaded. A host runs one pass by delivering
// input (HandleToggle, Submit, history navigation) and then calling Tick,
// which executes handler bindings, drains pending output into scrollback,
// and rotates the event queues. Events sent during a pass are visible to
// every reader by the end of that pass; a reader that polls every pass
// never misses an event.
//
// # Usage
//
// Register a command and bind its handler:
//
//	eng := console.New(console.Options{})
//	eng.AddCommand(&console.Spec{
//		Name:   "log",
//		Help:   "print a message",
//		Parser: console.NewArgSpec(
//			console.Arg("msg", console.ArgString, true, "message to print"),
//			console.Arg("count", console.ArgInt, false, "number of repeats"),
//		),
//	}, func(inv *console.Invocation) {
//		args, ok := inv.Take()
//		if !ok {
//			return
//		}
//		for i := 0; i < args.IntOr("count", 1); i++ {
//			inv.Reply(args.String("msg"))
//		}
//		inv.Ok()
//	})
//
// Drive it from a host loop:
//
//	eng.Submit("log hello 2")
//	eng.Tick()
package console
