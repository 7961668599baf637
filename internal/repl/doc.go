// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl provides the line-oriented console host.
//
// Where the TUI overlays the console on a scene, the REPL is the console
// alone: a readline-style prompt (arrow-key history, tab completion of
// command names) feeding the same engine dispatch path. After each
// submitted line the engine runs a short, rate-paced burst of passes so
// handler output drains into the scrollback, and only the new lines are
// printed.
//
// Styling is gated on a real terminal and the NO_COLOR convention;
// piped output stays plain. Piped stdin skips the line editor entirely
// and consumes one command per line, so scripts can drive the console.
// History is mirrored between the session ring and the line editor in
// memory only.
//
// # Usage
//
//	r := repl.New(cfg, eng)
//	if err := r.Run(); err != nil {
//	    log.Fatal(err)
//	}
package repl
