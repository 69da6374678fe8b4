// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// drainState is the shared stream state behind a QueueCursor: the queue
// being drained and one element of lookahead at the current position.
type drainState[E any] struct {
	q      *lfq.SPSC[E]
	cur    E
	serial Serial
}

// QueueCursor is a single-pass input cursor draining a bounded lock-free
// SPSC queue. Advancing any copy of the cursor consumes from the shared
// stream, which is exactly the input-capability contract: positions cannot be
// revisited, and advancing invalidates earlier copies.
//
// The zero QueueCursor is the end position. A drain reaches it when the
// queue has nothing buffered (the iox.ErrWouldBlock boundary).
type QueueCursor[E any] struct {
	InputTag
	st *drainState[E]
}

// Drain returns a cursor over the elements currently buffered in q.
// An empty queue drains to the end position immediately.
//
// The consumer side of the queue belongs to the drain for its lifetime:
// SPSC transport admits a single consumer.
func Drain[E any](q *lfq.SPSC[E]) QueueCursor[E] {
	v, err := q.Dequeue()
	if err != nil {
		// iox.ErrWouldBlock: nothing buffered.
		return QueueCursor[E]{}
	}
	return QueueCursor[E]{st: &drainState[E]{q: q, cur: v, serial: nextSerial()}}
}

// DrainEnd returns the end position of any drain over element type E.
func DrainEnd[E any]() QueueCursor[E] {
	return QueueCursor[E]{}
}

// Serial returns the serial number assigned to this cursor's drain
// stream, or zero for the end position.
func (c QueueCursor[E]) Serial() Serial {
	if c.st == nil {
		return 0
	}
	return c.st.serial
}

// Next consumes one element from the stream and returns the cursor at
// the next position, or the end position once the queue has nothing
// buffered.
func (c QueueCursor[E]) Next() QueueCursor[E] {
	if c.st == nil {
		return c
	}
	v, err := c.st.q.Dequeue()
	if err != nil {
		// iox.ErrWouldBlock: the drain is exhausted.
		return QueueCursor[E]{}
	}
	c.st.cur = v
	return QueueCursor[E]{st: c.st}
}

// Get returns the element at the current position. Undefined at the end
// position.
func (c QueueCursor[E]) Get() E {
	return c.st.cur
}

// QueueWriter is an output cursor feeding a bounded lock-free SPSC
// queue.
type QueueWriter[E any] struct {
	OutputTag
	q *lfq.SPSC[E]
}

// Feed returns an output cursor writing into q. The producer side of
// the queue belongs to the writer: SPSC transport admits a single
// producer.
func Feed[E any](q *lfq.SPSC[E]) QueueWriter[E] {
	return QueueWriter[E]{q: q}
}

// Put enqueues v and returns the writer as the next position. Waits
// past the iox.ErrWouldBlock boundary with adaptive backoff while the
// queue is full.
func (w QueueWriter[E]) Put(v E) QueueWriter[E] {
	slot := v
	var bo iox.Backoff
	for {
		if err := w.q.Enqueue(&slot); err == nil {
			return w
		}
		bo.Wait()
	}
}
