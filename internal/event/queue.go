// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package event implements the main dispatch loop: fd multiplexing via
// unix.Poll, the deferred ClientMessage queue, and the reload procedure.
package event

// TypeTag discriminates a deferred message's target kind, since the
// object it refers to (a window not yet adopted, a gravity not yet
// created) does not exist yet when the message arrives.
type TypeTag int

const (
	TypeTagClient TypeTag = iota
	TypeTagGravity
	TypeTagTag
	TypeTagView
)

// Message is a full copy of a ClientMessage's payload, stored until its
// target object exists.
type Message struct {
	Tag    TypeTag
	Format byte
	Atom   uint32
	Data   [5]uint32
}

// Queue is the deferred ClientMessage FIFO.
type Queue struct {
	pending []Message
}

// Push stores msg for later replay.
func (q *Queue) Push(msg Message) {
	q.pending = append(q.pending, msg)
}

// Pop walks the queue for every entry matching tag, rewrites its first
// data slot to target, and returns them for re-dispatch, removing them
// from the queue.
func (q *Queue) Pop(tag TypeTag, target uint32) []Message {
	var matched []Message
	var kept []Message
	for _, m := range q.pending {
		if m.Tag == tag {
			m.Data[0] = target
			matched = append(matched, m)
		} else {
			kept = append(kept, m)
		}
	}
	q.pending = kept
	return matched
}

// Len reports the number of pending deferred messages, mostly for tests
// and diagnostics.
func (q *Queue) Len() int { return len(q.pending) }
