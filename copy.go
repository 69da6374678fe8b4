// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"unsafe"
)

// Copy copies [first, last) into the output cursor out and returns out
// advanced past the written elements.
//
// When both the source range and the destination unwrap to raw
// addresses, the copy drops to a single bulk memory move; otherwise it
// runs element by element through the cursor interface. The destination
// must have room for the whole range; overlapping ranges behave like a
// memory move.
func Copy[E any, I Source[I, E], O Sink[O, E]](first, last I, out O) O {
	if d, ok := any(out).(Ptr[E]); ok {
		if s, n, ok := rawRange[E](first, last); ok {
			if n > 0 {
				copy(unsafe.Slice(d.p, n), unsafe.Slice(s, n))
			}
			return any(d.Advance(n)).(O)
		}
	}
	for first != last {
		out = out.Put(first.Get())
		first = first.Next()
	}
	return out
}

// rawRange reports the raw address and length of [first, last) when the
// source denotes contiguous memory, directly or through a wrapper.
func rawRange[E, I any](first, last I) (*E, int, bool) {
	switch s := any(first).(type) {
	case Ptr[E]:
		return s.p, s.Distance(any(last).(Ptr[E])), true
	case ConstPtr[E]:
		return s.p, s.Distance(any(last).(ConstPtr[E])), true
	}
	if s, ok := any(first).(interface{ Base() Ptr[E] }); ok {
		b := s.Base()
		return b.p, b.Distance(any(last).(interface{ Base() Ptr[E] }).Base()), true
	}
	if s, ok := any(first).(interface{ Base() ConstPtr[E] }); ok {
		b := s.Base()
		return b.p, b.Distance(any(last).(interface{ Base() ConstPtr[E] }).Base()), true
	}
	return nil, 0, false
}
