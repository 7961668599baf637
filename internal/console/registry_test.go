// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"fmt"
	"testing"
)

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	spec := &Spec{Name: "log", Help: "print a message"}
	r.Register(spec)

	got, ok := r.Lookup("log")
	if !ok || got != spec {
		t.Fatalf("Lookup(log) = %v, %v, want the registered spec", got, ok)
	}

	if _, ok := r.Lookup("Log"); ok {
		t.Errorf("Lookup is case-sensitive; Lookup(Log) should miss")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) should miss")
	}
}

func TestRegistryOverwriteWarns(t *testing.T) {
	r := NewRegistry()
	var warnings []string
	r.warn = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	first := &Spec{Name: "log", Help: "first"}
	second := &Spec{Name: "log", Help: "second"}
	r.Register(first)
	r.Register(second)

	if len(warnings) != 1 {
		t.Fatalf("warning count = %d, want 1", len(warnings))
	}

	got, ok := r.Lookup("log")
	if !ok || got != second {
		t.Errorf("Lookup after overwrite = %v, want the second spec", got)
	}
	if got == first {
		t.Errorf("old spec still returned after overwrite")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zoom", "alpha", "mid"} {
		r.Register(&Spec{Name: name})
	}

	got := r.Names()
	want := []string{"alpha", "mid", "zoom"}
	if len(got) != len(want) {
		t.Fatalf("Names() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSpecUsageLine(t *testing.T) {
	tests := []struct {
		spec *Spec
		want string
	}{
		{&Spec{Name: "raw"}, "usage: raw [args...]"},
		{&Spec{Name: "log", Parser: NewArgSpec(Arg("msg", ArgString, true, ""))}, "usage: log <msg>"},
	}

	for _, tc := range tests {
		if got := tc.spec.UsageLine(); got != tc.want {
			t.Errorf("UsageLine(%s) = %q, want %q", tc.spec.Name, got, tc.want)
		}
	}
}
