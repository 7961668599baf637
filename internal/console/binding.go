// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"errors"
	"fmt"
)

// Markers appended by Invocation.Ok and Invocation.Failed.
const (
	MarkerOK     = "[ok]"
	MarkerFailed = "[failed]"
)

// =============================================================================
// HANDLER BINDING
// =============================================================================

// HandlerFunc is a command implementation. It runs once per matching
// CommandEntered event, during the host pass's Tick.
type HandlerFunc func(inv *Invocation)

// binding subscribes one handler to the CommandEntered broadcast. Every
// binding owns its reader and filters by its own name, so several bindings
// can coexist on one stream (including, deliberately or not, several for
// the same name).
type binding struct {
	name   string
	fn     HandlerFunc
	reader *Reader[CommandEntered]
}

// run delivers all unread matching events to the handler.
func (b *binding) run(e *Engine) {
	for _, ev := range b.reader.Read() {
		if ev.Name != b.name {
			continue
		}
		e.deliver(b.fn, ev)
	}
}

// deliver parses one event's arguments and invokes the handler. A parse
// failure queues the rendered diagnostic and usage line before the handler
// runs, so the handler can still decide to add a failure marker.
func (e *Engine) deliver(fn HandlerFunc, ev CommandEntered) {
	inv := &Invocation{Name: ev.Name, RawArgs: ev.Args, eng: e}

	spec, ok := e.registry.Lookup(ev.Name)
	if !ok || spec.Parser == nil {
		inv.args = Args{rest: append([]string(nil), ev.Args...)}
	} else if args, err := spec.Parser.Parse(ev.Args); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) && perr.Command == "" {
			perr.Command = ev.Name
		}
		inv.parseErr = err
		e.Print("error: " + err.Error())
		e.Print(spec.UsageLine())
	} else {
		inv.args = args
	}

	fn(inv)
}

// =============================================================================
// INVOCATION
// =============================================================================

// Invocation is one matched command delivery. The handler takes the parsed
// arguments at most once and queues replies through it; all output funnels
// into PrintLine events, never directly into scrollback.
type Invocation struct {
	// Name is the command name as typed
	Name string

	// RawArgs are the tokens that followed the name, unparsed
	RawArgs []string

	args     Args
	parseErr error
	taken    bool
	eng      *Engine
}

// Take hands over the parsed arguments exactly once. It returns false on
// the second and later calls, and always when parsing failed (the
// diagnostic has already been queued by then).
func (inv *Invocation) Take() (Args, bool) {
	if inv.taken || inv.parseErr != nil {
		return Args{}, false
	}
	inv.taken = true
	return inv.args, true
}

// Err returns the argument parse failure, nil when parsing succeeded.
func (inv *Invocation) Err() error {
	return inv.parseErr
}

// Reply queues one line of output.
func (inv *Invocation) Reply(text string) {
	inv.eng.Print(text)
}

// Replyf queues one formatted line of output.
func (inv *Invocation) Replyf(format string, args ...any) {
	inv.eng.Print(fmt.Sprintf(format, args...))
}

// Ok queues the success marker.
func (inv *Invocation) Ok() {
	inv.eng.Print(MarkerOK)
}

// Failed queues the failure marker.
func (inv *Invocation) Failed() {
	inv.eng.Print(MarkerFailed)
}

// ReplyOk queues a line followed by the success marker.
func (inv *Invocation) ReplyOk(text string) {
	inv.Reply(text)
	inv.Ok()
}

// ReplyFailed queues a line followed by the failure marker.
func (inv *Invocation) ReplyFailed(text string) {
	inv.Reply(text)
	inv.Failed()
}
