// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import "strings"

// =============================================================================
// TOKENIZER
// =============================================================================

// Lexer splits a raw input line into tokens on demand, using shell-like
// rules: unquoted whitespace separates tokens, single quotes take everything
// literally, double quotes group whitespace and honor backslash escapes for
// '"' and '\', and a backslash outside quotes escapes the next character.
//
// Malformed input never produces an error. An unterminated quote yields the
// remainder of the line as one token; a trailing backslash is dropped. The
// lexer holds no state beyond its position and never consults the registry.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over one raw line.
func NewLexer(line string) *Lexer {
	return &Lexer{input: line}
}

// Reset rewinds the lexer to the start of the line.
func (l *Lexer) Reset() {
	l.pos = 0
}

// Next returns the next token. The second result is false once the line is
// exhausted; empty and whitespace-only lines yield no tokens at all.
func (l *Lexer) Next() (string, bool) {
	for l.pos < len(l.input) && isTokenSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return "", false
	}

	var b strings.Builder
	quoted := false
scan:
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case isTokenSpace(c):
			break scan

		case c == '\'':
			quoted = true
			l.pos++
			l.scanSingle(&b)

		case c == '"':
			quoted = true
			l.pos++
			l.scanDouble(&b)

		case c == '\\':
			l.pos++
			if l.pos < len(l.input) {
				b.WriteByte(l.input[l.pos])
				l.pos++
			}

		default:
			b.WriteByte(c)
			l.pos++
		}
	}

	tok := b.String()
	if tok == "" && !quoted {
		// Only a dangling backslash was consumed
		return "", false
	}
	return tok, true
}

// scanSingle consumes up to the closing single quote, copying bytes
// verbatim. A missing closing quote consumes the rest of the line.
func (l *Lexer) scanSingle(b *strings.Builder) {
	for l.pos < len(l.input) && l.input[l.pos] != '\'' {
		b.WriteByte(l.input[l.pos])
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
}

// scanDouble consumes up to the closing double quote. Backslash escapes a
// following '"' or '\'; any other backslash is kept literally.
func (l *Lexer) scanDouble(b *strings.Builder) {
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		c := l.input[l.pos]
		if c == '\\' && l.pos+1 < len(l.input) {
			next := l.input[l.pos+1]
			if next == '"' || next == '\\' {
				b.WriteByte(next)
				l.pos += 2
				continue
			}
		}
		b.WriteByte(c)
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
}

// Split tokenizes a whole line at once.
func Split(line string) []string {
	var tokens []string
	lx := NewLexer(line)
	for {
		tok, ok := lx.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// isTokenSpace reports whether c separates tokens outside quotes.
func isTokenSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
