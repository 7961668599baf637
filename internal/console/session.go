// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import "strings"

// =============================================================================
// SESSION STATE
// =============================================================================

// Session holds the interactive state of one console: the edit buffer, the
// append-only scrollback, and the navigable history ring. It lives for the
// host application's lifetime and is mutated only on the host loop.
type Session struct {
	buf        string
	scrollback []string
	history    *History
}

// NewSession creates a session with the given history capacity (the scratch
// slot is extra).
func NewSession(historySize int) *Session {
	return &Session{history: NewHistory(historySize)}
}

// Buffer returns the current edit buffer.
func (s *Session) Buffer() string {
	return s.buf
}

// SetBuffer replaces the edit buffer. Hosts call this to sync their input
// widget before submitting or navigating.
func (s *Session) SetBuffer(text string) {
	s.buf = text
}

// Append adds one line to scrollback.
func (s *Session) Append(line string) {
	s.scrollback = append(s.scrollback, line)
}

// Lines returns the scrollback, oldest first. The slice is shared; callers
// must not modify it.
func (s *Session) Lines() []string {
	return s.scrollback
}

// LineCount reports the scrollback length.
func (s *Session) LineCount() int {
	return len(s.scrollback)
}

// Clear empties the scrollback immediately.
func (s *Session) Clear() {
	s.scrollback = nil
}

// History exposes the history ring.
func (s *Session) History() *History {
	return s.history
}

// NavigateUp moves one step into older history. When leaving the live edit
// (cursor at 0) with a non-blank buffer, the buffer is first snapshotted
// into the scratch slot so it can be recovered by navigating back down.
// No-op when already at the oldest entry or when there is no history.
// Hosts should move their edit cursor to end-of-text after a load.
func (s *Session) NavigateUp() {
	h := s.history
	if h.Len() <= 1 || h.cursor >= h.Len()-1 {
		return
	}
	if h.cursor == 0 && strings.TrimSpace(s.buf) != "" {
		h.entries[0] = s.buf
	}
	h.cursor++
	s.buf = h.entries[h.cursor]
}

// NavigateDown moves one step toward the live edit. No-op at cursor 0.
func (s *Session) NavigateDown() {
	h := s.history
	if h.cursor == 0 {
		return
	}
	h.cursor--
	s.buf = h.entries[h.cursor]
}

// =============================================================================
// HISTORY RING
// =============================================================================

// History is a ring of previously submitted raw lines. Index 0 is a scratch
// slot holding the in-progress edit while the user browses older entries;
// submitted lines start at index 1, newest first. Capacity bounds the
// submitted lines only, so len never exceeds size+1.
//
// Invariant: 0 <= cursor < len(entries).
type History struct {
	entries []string
	cursor  int
	size    int
}

// NewHistory creates a history ring holding up to size submitted lines.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{entries: []string{""}, size: size}
}

// Push inserts a submitted line at index 1, evicting the oldest entry once
// the ring is full. The cursor is left where it was.
func (h *History) Push(line string) {
	h.entries = append(h.entries, "")
	copy(h.entries[2:], h.entries[1:])
	h.entries[1] = line
	if len(h.entries) > h.size+1 {
		h.entries = h.entries[:h.size+1]
	}
}

// Len reports the entry count including the scratch slot.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current browse position (0 = live edit).
func (h *History) Cursor() int {
	return h.cursor
}

// At returns the entry at index i, with index 0 being the scratch slot.
func (h *History) At(i int) string {
	return h.entries[i]
}

// Submitted returns the submitted lines, newest first, excluding the
// scratch slot.
func (h *History) Submitted() []string {
	out := make([]string, len(h.entries)-1)
	copy(out, h.entries[1:])
	return out
}

// Resize changes the ring capacity, evicting the oldest entries when
// shrinking and clamping the cursor back into range.
func (h *History) Resize(size int) {
	if size < 1 {
		size = 1
	}
	h.size = size
	if len(h.entries) > h.size+1 {
		h.entries = h.entries[:h.size+1]
	}
	if h.cursor >= len(h.entries) {
		h.cursor = len(h.entries) - 1
	}
}
