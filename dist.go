// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

// Distance returns the number of forward steps from first to last.
//
// One entry point, strategy selected by the cursor's resolved capability
// tag: cursors tagged random-access resolve in constant time via
// position arithmetic; every other capability walks and counts, linear
// in the result. Bidirectional cursors get no partial optimization.
//
// last must be reachable from first by forward steps and both positions
// must be drawn from the same sequence; otherwise the walk does not
// terminate and the arithmetic path returns a meaningless value. Neither
// is detected; the contract mirrors raw-memory cost.
func Distance[C Input[C]](first, last C) int {
	if _, ok := any(first).(interface{ capabilityRandomAccess() }); ok {
		ra, ok := any(first).(interface{ Distance(C) int })
		if !ok {
			panic("astl: random-access tag without position arithmetic")
		}
		return ra.Distance(last)
	}
	n := 0
	for first != last {
		first = first.Next()
		n++
	}
	return n
}

// AdvanceBy returns the position n steps forward from c, selecting the
// strategy from the resolved capability tag: a constant-time arithmetic
// jump for random-access cursors, a step loop otherwise.
//
// Negative n steps backward and requires at least bidirectional
// capability; on a forward-only cursor it panics. Moving past either
// bound of the sequence is undefined.
func AdvanceBy[C Input[C]](c C, n int) C {
	if _, ok := any(c).(interface{ capabilityRandomAccess() }); ok {
		ra, ok := any(c).(interface{ Advance(int) C })
		if !ok {
			panic("astl: random-access tag without position arithmetic")
		}
		return ra.Advance(n)
	}
	for n > 0 {
		c = c.Next()
		n--
	}
	if n < 0 {
		if _, ok := any(c).(interface{ Prev() C }); !ok {
			panic("astl: negative advance on a forward-only cursor")
		}
		for n < 0 {
			c = any(c).(interface{ Prev() C }).Prev()
			n++
		}
	}
	return c
}
