// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package event

import "testing"

func TestPopRewritesFirstDataSlotAndRemovesMatches(t *testing.T) {
	q := &Queue{}
	q.Push(Message{Tag: TypeTagClient, Atom: 1, Data: [5]uint32{0, 7}})
	q.Push(Message{Tag: TypeTagGravity, Atom: 2, Data: [5]uint32{0, 8}})
	q.Push(Message{Tag: TypeTagClient, Atom: 3, Data: [5]uint32{0, 9}})

	matched := q.Pop(TypeTagClient, 42)
	if len(matched) != 2 {
		t.Fatalf("Pop() = %v, want 2 matches", matched)
	}
	for _, m := range matched {
		if m.Data[0] != 42 {
			t.Fatalf("matched message data[0] = %d, want rewritten to 42", m.Data[0])
		}
	}
	if q.Len() != 1 {
		t.Fatalf("Len() after Pop() = %d, want 1 (the unmatched gravity message)", q.Len())
	}
}

func TestPopOnEmptyQueueReturnsNothing(t *testing.T) {
	q := &Queue{}
	if matched := q.Pop(TypeTagClient, 1); len(matched) != 0 {
		t.Fatalf("Pop() on empty queue = %v, want empty", matched)
	}
}

func TestPopPreservesOrderOfKeptMessages(t *testing.T) {
	q := &Queue{}
	q.Push(Message{Tag: TypeTagView, Atom: 1})
	q.Push(Message{Tag: TypeTagClient, Atom: 2})
	q.Push(Message{Tag: TypeTagView, Atom: 3})

	q.Pop(TypeTagClient, 99)
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	remaining := q.Pop(TypeTagView, 0)
	if len(remaining) != 2 || remaining[0].Atom != 1 || remaining[1].Atom != 3 {
		t.Fatalf("remaining order = %v, want [atom=1, atom=3]", remaining)
	}
}
