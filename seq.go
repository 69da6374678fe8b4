// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"iter"
)

// Values bridges a cursor range to the standard iterator protocol,
// yielding the elements of [first, last) as an iter.Seq. The element
// type is given explicitly: Values[int](first, last).
func Values[E any, C Source[C, E]](first, last C) iter.Seq[E] {
	return func(yield func(E) bool) {
		for c := first; c != last; c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// pullState is the shared stream state behind a SeqCursor.
type pullState[E any] struct {
	next func() (E, bool)
	stop func()
	cur  E
}

// SeqCursor adapts an iter.Seq to a single-pass input cursor, giving
// any standard Go sequence a position in the capability system. Like
// [QueueCursor], advancing any copy consumes from the shared stream.
//
// The zero SeqCursor is the end position.
type SeqCursor[E any] struct {
	InputTag
	st *pullState[E]
}

// FromSeq returns an input cursor over the elements of seq. The pull
// iterator is stopped when the cursor reaches the end position;
// abandoned cursors hold it until garbage collection.
func FromSeq[E any](seq iter.Seq[E]) SeqCursor[E] {
	next, stop := iter.Pull(seq)
	v, ok := next()
	if !ok {
		stop()
		return SeqCursor[E]{}
	}
	return SeqCursor[E]{st: &pullState[E]{next: next, stop: stop, cur: v}}
}

// SeqEnd returns the end position of any adapted sequence over E.
func SeqEnd[E any]() SeqCursor[E] {
	return SeqCursor[E]{}
}

// Next consumes one element and returns the cursor at the next
// position, or the end position once the sequence is exhausted.
func (c SeqCursor[E]) Next() SeqCursor[E] {
	if c.st == nil {
		return c
	}
	v, ok := c.st.next()
	if !ok {
		c.st.stop()
		return SeqCursor[E]{}
	}
	c.st.cur = v
	return SeqCursor[E]{st: c.st}
}

// Get returns the element at the current position. Undefined at the end
// position.
func (c SeqCursor[E]) Get() E {
	return c.st.cur
}
