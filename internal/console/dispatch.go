// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import "strings"

// errInvalidCommand is the diagnostic for names missing from the registry.
const errInvalidCommand = "error: Invalid command"

// =============================================================================
// DISPATCH
// =============================================================================

// Submit dispatches one raw line as if it were the current edit buffer.
func (e *Engine) Submit(line string) {
	e.session.SetBuffer(line)
	e.SubmitBuffer()
}

// SubmitBuffer dispatches the session's edit buffer:
//
//  1. A blank buffer appends one blank scrollback line and stops; the
//     buffer is left untouched.
//  2. Otherwise the line is echoed as prompt+line, pushed into history,
//     and the buffer cleared.
//  3. The line is tokenized; zero tokens stop silently.
//  4. The first token is looked up in the registry. A hit emits
//     CommandEntered for the handler bindings; a miss queues the invalid
//     command diagnostic. Argument validity plays no part here.
func (e *Engine) SubmitBuffer() {
	line := e.session.Buffer()
	if strings.TrimSpace(line) == "" {
		e.session.Append("")
		return
	}

	e.session.Append(e.prompt + line)
	e.session.History().Push(line)
	e.session.SetBuffer("")

	tokens := Split(line)
	if len(tokens) == 0 {
		return
	}

	name, args := tokens[0], tokens[1:]
	if _, ok := e.registry.Lookup(name); ok {
		e.entered.Send(CommandEntered{Name: name, Args: args})
	} else {
		e.Print(errInvalidCommand)
	}
}
