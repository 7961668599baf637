// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// ARGSPEC TESTS
// =============================================================================

func TestArgSpecParseTypes(t *testing.T) {
	spec := NewArgSpec(
		Arg("msg", ArgString, true, "message"),
		Arg("count", ArgInt, false, "repeat count"),
		Arg("scale", ArgFloat, false, "scale factor"),
		Arg("loud", ArgBool, false, "shout it"),
	)

	args, err := spec.Parse([]string{"hello", "2", "1.5", "true"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := args.String("msg"); got != "hello" {
		t.Errorf("String(msg) = %q, want %q", got, "hello")
	}
	if got := args.Int("count"); got != 2 {
		t.Errorf("Int(count) = %d, want 2", got)
	}
	if got := args.Float("scale"); got != 1.5 {
		t.Errorf("Float(scale) = %v, want 1.5", got)
	}
	if !args.Bool("loud") {
		t.Errorf("Bool(loud) = false, want true")
	}
}

func TestArgSpecOptionalDefaults(t *testing.T) {
	spec := NewArgSpec(
		Arg("msg", ArgString, true, "message"),
		Arg("count", ArgInt, false, "repeat count"),
	)

	args, err := spec.Parse([]string{"hi"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if args.Has("count") {
		t.Errorf("Has(count) = true for absent argument")
	}
	if got := args.IntOr("count", 1); got != 1 {
		t.Errorf("IntOr(count, 1) = %d, want 1", got)
	}
	if got := args.StringOr("count", "x"); got != "x" {
		t.Errorf("StringOr default = %q, want %q", got, "x")
	}
}

func TestArgSpecParseErrors(t *testing.T) {
	spec := NewArgSpec(
		Arg("msg", ArgString, true, "message"),
		Arg("count", ArgInt, false, "repeat count"),
	)

	tests := []struct {
		args    []string
		arg     string // ParseError.Arg
		message string // ParseError.Message
	}{
		{[]string{}, "msg", "required argument missing"},
		{[]string{"hi", "two"}, "count", "invalid integer"},
		{[]string{"hi", "2", "extra"}, "", "unexpected extra argument"},
	}

	for _, tc := range tests {
		_, err := spec.Parse(tc.args)
		if err == nil {
			t.Errorf("Parse(%v) = nil error, want %q", tc.args, tc.message)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%v) error type = %T, want *ParseError", tc.args, err)
			continue
		}
		if perr.Arg != tc.arg || perr.Message != tc.message {
			t.Errorf("Parse(%v) = %q/%q, want %q/%q", tc.args, perr.Arg, perr.Message, tc.arg, tc.message)
		}
	}
}

func TestArgSpecEnum(t *testing.T) {
	spec := NewArgSpec(Enum("theme", true, "color theme", "dark", "light", "mono"))

	args, err := spec.Parse([]string{"LIGHT"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := args.String("theme"); got != "light" {
		t.Errorf("enum canonical value = %q, want %q", got, "light")
	}

	_, err = spec.Parse([]string{"sepia"})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("invalid enum error type = %T, want *ParseError", err)
	}
	if perr.Got != "sepia" || !strings.Contains(perr.Expected, "dark") {
		t.Errorf("enum error = got %q expected %q", perr.Got, perr.Expected)
	}
}

func TestArgSpecRest(t *testing.T) {
	spec := &ArgSpec{
		Defs: []ArgDef{Arg("first", ArgString, true, "first word")},
		Rest: &ArgDef{Name: "words", Description: "remaining words"},
	}

	args, err := spec.Parse([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	rest := args.Rest()
	if len(rest) != 2 || rest[0] != "b" || rest[1] != "c" {
		t.Errorf("Rest() = %v, want [b c]", rest)
	}
}

func TestFreeFormAcceptsAnything(t *testing.T) {
	args, err := FreeForm.Parse([]string{"anything", "at", "all"})
	if err != nil {
		t.Fatalf("FreeForm.Parse returned error: %v", err)
	}
	if len(args.Rest()) != 3 {
		t.Errorf("FreeForm Rest() length = %d, want 3", len(args.Rest()))
	}
}

func TestArgSpecUsage(t *testing.T) {
	tests := []struct {
		spec *ArgSpec
		name string
		want string
	}{
		{NewArgSpec(), "clear", "usage: clear"},
		{NewArgSpec(Arg("msg", ArgString, true, ""), Arg("count", ArgInt, false, "")), "log", "usage: log <msg> [count]"},
		{&ArgSpec{Rest: &ArgDef{Name: "args"}}, "raw", "usage: raw [args...]"},
	}

	for _, tc := range tests {
		got := tc.spec.Usage(tc.name)
		if got != tc.want {
			t.Errorf("Usage(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{
		Command:  "log",
		Arg:      "count",
		Message:  "invalid integer",
		Got:      "two",
		Expected: "a base-10 number",
	}
	want := "log: invalid integer for argument 'count' (got: two) - expected: a base-10 number"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
