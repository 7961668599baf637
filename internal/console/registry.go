// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"fmt"
	"os"
	"sort"
)

// =============================================================================
// COMMAND SPEC
// =============================================================================

// Spec describes one registered command. Specs are created at registration
// time and never mutated; the registry owns them until process teardown.
type Spec struct {
	// Name is the unique command name, matched case-sensitively
	Name string

	// Parser validates and decodes the argument tokens. nil accepts any
	// argument list (equivalent to FreeForm).
	Parser Parser

	// Help is the one-line description shown by the help command
	Help string

	// LongHelp is an optional Markdown body shown by "help <name>";
	// hosts decide how it is rendered
	LongHelp string
}

// UsageLine renders the spec's usage string, falling back to a bare
// free-form form when no parser is attached.
func (s *Spec) UsageLine() string {
	if s.Parser == nil {
		return "usage: " + s.Name + " [args...]"
	}
	return s.Parser.Usage(s.Name)
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands, keyed by name. Lookup is exact
// and case-sensitive; listing is sorted. Registration normally happens
// before the host loop starts; overwriting later is possible but warned
// about, never prevented.
type Registry struct {
	commands map[string]*Spec

	// warn receives non-fatal registration diagnostics
	warn func(format string, args ...any)
}

// NewRegistry creates an empty registry. Warnings go to stderr until the
// owning engine installs its own hook.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Spec),
		warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Register inserts a spec, overwriting any previous spec with the same
// name. A duplicate name emits a warning; the overwrite proceeds.
func (r *Registry) Register(spec *Spec) {
	if _, exists := r.commands[spec.Name]; exists {
		r.warn("console command %q is already registered, overwriting", spec.Name)
	}
	r.commands[spec.Name] = spec
}

// Lookup retrieves a command by exact name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}

// Names returns all registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many commands are registered.
func (r *Registry) Len() int {
	return len(r.commands)
}
