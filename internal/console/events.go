// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

// =============================================================================
// EVENT TYPES
// =============================================================================

// CommandEntered is the intent produced for each accepted submission whose
// first token matches a registered command.
type CommandEntered struct {
	// Name is the command name as typed (first token)
	Name string

	// Args are the remaining tokens, in order
	Args []string
}

// PrintLine is a single line of console output. Text may carry ANSI styling;
// the session appends lines to scrollback in emission order.
type PrintLine struct {
	Text string
}

// =============================================================================
// DOUBLE-BUFFERED EVENT QUEUE
// =============================================================================

// Queue is an ordered broadcast queue for one event type. Events sent during
// a pass stay buffered for that pass and the next one, then drop on the
// second Update. Any number of readers consume independently; a reader that
// reads every pass observes every event exactly once, in send order.
//
// Queue is not safe for concurrent use. The engine's pass model keeps all
// sends and reads on the host loop.
type Queue[T any] struct {
	// front holds events from the previous pass, back from the current one
	front []T
	back  []T

	// frontSeq is the absolute sequence number of front[0]
	frontSeq uint64
}

// NewQueue creates an empty event queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends an event to the current pass.
func (q *Queue[T]) Send(ev T) {
	q.back = append(q.back, ev)
}

// Update rotates the buffers at the end of a pass. Events that have already
// survived one rotation are dropped; readers holding cursors into dropped
// events skip forward on their next Read.
func (q *Queue[T]) Update() {
	q.frontSeq += uint64(len(q.front))
	q.front = q.back
	q.back = nil
}

// Clear drops every buffered event immediately.
func (q *Queue[T]) Clear() {
	q.frontSeq += uint64(len(q.front) + len(q.back))
	q.front = nil
	q.back = nil
}

// Len reports how many events are currently buffered.
func (q *Queue[T]) Len() int {
	return len(q.front) + len(q.back)
}

// nextSeq is the sequence number the next Send will receive.
func (q *Queue[T]) nextSeq() uint64 {
	return q.frontSeq + uint64(len(q.front)+len(q.back))
}

// Subscribe returns a reader positioned at the oldest buffered event, so a
// new reader sees everything still in the queue (at most the previous pass
// and the current one).
func (q *Queue[T]) Subscribe() *Reader[T] {
	return &Reader[T]{queue: q, cursor: q.frontSeq}
}

// =============================================================================
// READER
// =============================================================================

// Reader is an independent cursor over a Queue. Each reader sees each event
// at most once.
type Reader[T any] struct {
	queue  *Queue[T]
	cursor uint64
}

// Read returns every buffered event this reader has not seen yet, in send
// order, and advances the cursor past them. Events dropped by rotation
// before they were read are silently skipped.
func (r *Reader[T]) Read() []T {
	q := r.queue
	if r.cursor < q.frontSeq {
		r.cursor = q.frontSeq
	}
	offset := int(r.cursor - q.frontSeq)
	total := len(q.front) + len(q.back)
	if offset >= total {
		return nil
	}
	out := make([]T, 0, total-offset)
	if offset < len(q.front) {
		out = append(out, q.front[offset:]...)
		offset = len(q.front)
	}
	out = append(out, q.back[offset-len(q.front):]...)
	r.cursor = q.frontSeq + uint64(total)
	return out
}

// Pending reports how many buffered events the reader has not read yet.
func (r *Reader[T]) Pending() int {
	q := r.queue
	if r.cursor < q.frontSeq {
		return q.Len()
	}
	return int(q.nextSeq() - r.cursor)
}
