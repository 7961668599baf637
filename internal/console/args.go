// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import (
	"strconv"
	"strings"
)

// =============================================================================
// PARSER CAPABILITY
// =============================================================================

// Parser converts a command's argument tokens into a typed result. Every
// registered command carries one; the engine core never interprets argument
// grammar itself. A nil parser on a Spec accepts any argument list.
type Parser interface {
	// Parse validates and decodes the tokens that followed the command name.
	Parse(args []string) (Args, error)

	// Usage renders a one-line usage string for the given command name.
	Usage(name string) string
}

// FreeForm accepts any argument list without validation; the tokens are
// available through Args.Rest.
var FreeForm Parser = &ArgSpec{Rest: &ArgDef{Name: "args", Description: "free-form arguments"}}

// =============================================================================
// ARGUMENT DEFINITIONS
// =============================================================================

// ArgType determines how an argument token is decoded.
type ArgType int

const (
	ArgString ArgType = iota // Free-form string
	ArgInt                   // Base-10 integer
	ArgFloat                 // Floating point number
	ArgBool                  // true/false, t/f, 1/0
	ArgEnum                  // One of predefined values
)

// ArgDef defines one positional argument.
type ArgDef struct {
	// Name of the argument, used for lookup and usage rendering
	Name string

	// Required indicates the argument must be provided
	Required bool

	// Type determines decoding
	Type ArgType

	// Description explains the argument in help output
	Description string

	// Values for enum types; matching is case-insensitive and the
	// configured casing is what getters return
	Values []string
}

// Arg is a shorthand constructor for an ArgDef.
func Arg(name string, typ ArgType, required bool, desc string) ArgDef {
	return ArgDef{Name: name, Type: typ, Required: required, Description: desc}
}

// Enum is a shorthand constructor for an enum-typed ArgDef.
func Enum(name string, required bool, desc string, values ...string) ArgDef {
	return ArgDef{Name: name, Type: ArgEnum, Required: required, Description: desc, Values: values}
}

// =============================================================================
// ARGSPEC
// =============================================================================

// ArgSpec is the stock Parser: ordered positional definitions with typed
// decoding, optional trailing collection, and usage rendering. Optional
// definitions should follow required ones; parsing assigns tokens to
// definitions left to right.
type ArgSpec struct {
	// Defs are the positional argument definitions, in order
	Defs []ArgDef

	// Rest, when set, collects tokens beyond the positional definitions
	// as plain strings. When nil, extra tokens are an error.
	Rest *ArgDef
}

// NewArgSpec creates an ArgSpec from positional definitions.
func NewArgSpec(defs ...ArgDef) *ArgSpec {
	return &ArgSpec{Defs: defs}
}

// Parse implements Parser.
func (s *ArgSpec) Parse(args []string) (Args, error) {
	out := Args{values: make(map[string]argValue, len(s.Defs))}

	for i, def := range s.Defs {
		if i >= len(args) {
			if def.Required {
				return Args{}, &ParseError{
					Arg:      def.Name,
					Message:  "required argument missing",
					Expected: def.Description,
				}
			}
			continue
		}
		val, err := decodeArg(def, args[i])
		if err != nil {
			return Args{}, err
		}
		out.values[def.Name] = val
	}

	if extra := len(args) - len(s.Defs); extra > 0 {
		if s.Rest == nil {
			return Args{}, &ParseError{
				Message: "unexpected extra argument",
				Got:     args[len(s.Defs)],
			}
		}
		out.rest = append(out.rest, args[len(s.Defs):]...)
	}

	return out, nil
}

// Usage implements Parser.
func (s *ArgSpec) Usage(name string) string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(name)
	for _, def := range s.Defs {
		if def.Required {
			b.WriteString(" <" + def.Name + ">")
		} else {
			b.WriteString(" [" + def.Name + "]")
		}
	}
	if s.Rest != nil {
		b.WriteString(" [" + s.Rest.Name + "...]")
	}
	return b.String()
}

// decodeArg type-checks one token against its definition.
func decodeArg(def ArgDef, tok string) (argValue, error) {
	val := argValue{raw: tok}
	switch def.Type {
	case ArgString:
		// Raw token as-is

	case ArgInt:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return argValue{}, &ParseError{
				Arg:      def.Name,
				Message:  "invalid integer",
				Got:      tok,
				Expected: "a base-10 number",
			}
		}
		val.num = n

	case ArgFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return argValue{}, &ParseError{
				Arg:      def.Name,
				Message:  "invalid number",
				Got:      tok,
				Expected: "a decimal number",
			}
		}
		val.fnum = f

	case ArgBool:
		v, err := strconv.ParseBool(tok)
		if err != nil {
			return argValue{}, &ParseError{
				Arg:      def.Name,
				Message:  "invalid boolean",
				Got:      tok,
				Expected: "true or false",
			}
		}
		val.flag = v

	case ArgEnum:
		matched := false
		for _, v := range def.Values {
			if strings.EqualFold(tok, v) {
				val.raw = v
				matched = true
				break
			}
		}
		if !matched {
			return argValue{}, &ParseError{
				Arg:      def.Name,
				Message:  "invalid value",
				Got:      tok,
				Expected: strings.Join(def.Values, ", "),
			}
		}
	}
	return val, nil
}

// =============================================================================
// PARSED ARGUMENTS
// =============================================================================

// argValue holds one decoded token.
type argValue struct {
	raw  string
	num  int64
	fnum float64
	flag bool
}

// Args is the typed result of a successful parse. Getters return zero
// values for absent arguments; use Has to distinguish.
type Args struct {
	values map[string]argValue
	rest   []string
}

// Has reports whether the named argument was provided.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns the named argument's raw (or canonical enum) token.
func (a Args) String(name string) string {
	return a.values[name].raw
}

// StringOr returns the named argument or a default when absent.
func (a Args) StringOr(name, def string) string {
	if v, ok := a.values[name]; ok {
		return v.raw
	}
	return def
}

// Int returns the named integer argument, 0 when absent.
func (a Args) Int(name string) int {
	return int(a.values[name].num)
}

// IntOr returns the named integer argument or a default when absent.
func (a Args) IntOr(name string, def int) int {
	if v, ok := a.values[name]; ok {
		return int(v.num)
	}
	return def
}

// Float returns the named float argument, 0 when absent.
func (a Args) Float(name string) float64 {
	return a.values[name].fnum
}

// Bool returns the named boolean argument, false when absent.
func (a Args) Bool(name string) bool {
	return a.values[name].flag
}

// Rest returns tokens collected beyond the positional definitions.
func (a Args) Rest() []string {
	return a.rest
}

// =============================================================================
// PARSE ERROR
// =============================================================================

// ParseError is a structured argument parse failure. Command is filled in
// by the handler binding when the parser itself does not know the name.
type ParseError struct {
	Command  string
	Arg      string
	Message  string
	Got      string
	Expected string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Command != "" {
		msg = e.Command + ": " + msg
	}
	if e.Arg != "" {
		msg += " for argument '" + e.Arg + "'"
	}
	if e.Got != "" {
		msg += " (got: " + e.Got + ")"
	}
	if e.Expected != "" {
		msg += " - expected: " + e.Expected
	}
	return msg
}
