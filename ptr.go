// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"unsafe"
)

// Ptr is the mutable raw-address cursor over contiguous memory holding
// elements of type E. It is the structural-inference path of trait
// resolution: Go pointers carry no methods, so the library supplies the
// address cursor with the RandomAccess bundle built in for any E.
//
// Operations cost exactly what raw pointer arithmetic costs: no bounds
// checks. Positions outside the underlying allocation, other than one
// past its end, are undefined. The one-past-end position is a valid
// value but not valid to read or write.
type Ptr[E any] struct {
	RandomAccessTag
	p *E
}

// First returns the cursor at position 0 of s.
func First[E any](s []E) Ptr[E] {
	return Ptr[E]{p: unsafe.SliceData(s)}
}

// Limit returns the one-past-end cursor of s.
func Limit[E any](s []E) Ptr[E] {
	return First(s).Advance(len(s))
}

func (c Ptr[E]) Next() Ptr[E] { return c.Advance(1) }
func (c Ptr[E]) Prev() Ptr[E] { return c.Advance(-1) }

// Advance returns the position n elements forward, backward for
// negative n.
func (c Ptr[E]) Advance(n int) Ptr[E] {
	return Ptr[E]{p: (*E)(unsafe.Add(unsafe.Pointer(c.p), n*int(unsafe.Sizeof(*c.p))))}
}

// Distance returns the number of forward steps from c to o. Both
// positions must lie within the same allocation.
func (c Ptr[E]) Distance(o Ptr[E]) int {
	return addrDistance(unsafe.Pointer(c.p), unsafe.Pointer(o.p), unsafe.Sizeof(*c.p))
}

func (c Ptr[E]) Get() E     { return *c.p }
func (c Ptr[E]) At(n int) E { return *c.Advance(n).p }
func (c Ptr[E]) Set(v E)    { *c.p = v }

// Ref returns the address of the current element for in-place access.
func (c Ptr[E]) Ref() *E { return c.p }

// Put stores v at the current position and returns the next position,
// making Ptr usable as an output cursor.
func (c Ptr[E]) Put(v E) Ptr[E] {
	*c.p = v
	return c.Next()
}

// Addr returns the current position as an untyped address. Position
// comparison across primitive representations goes through Addr.
func (c Ptr[E]) Addr() unsafe.Pointer { return unsafe.Pointer(c.p) }

// Const widens c to its read-only counterpart. There is no conversion
// back.
func (c Ptr[E]) Const() ConstPtr[E] { return ConstPtr[E]{p: c.p} }

// ConstPtr is the read-only raw-address cursor: the traversal of [Ptr]
// with element mutation excluded from its method set, so write attempts
// are compile errors.
type ConstPtr[E any] struct {
	RandomAccessTag
	p *E
}

func (c ConstPtr[E]) Next() ConstPtr[E] { return c.Advance(1) }
func (c ConstPtr[E]) Prev() ConstPtr[E] { return c.Advance(-1) }

// Advance returns the position n elements forward, backward for
// negative n.
func (c ConstPtr[E]) Advance(n int) ConstPtr[E] {
	return ConstPtr[E]{p: (*E)(unsafe.Add(unsafe.Pointer(c.p), n*int(unsafe.Sizeof(*c.p))))}
}

// Distance returns the number of forward steps from c to o. Both
// positions must lie within the same allocation.
func (c ConstPtr[E]) Distance(o ConstPtr[E]) int {
	return addrDistance(unsafe.Pointer(c.p), unsafe.Pointer(o.p), unsafe.Sizeof(*c.p))
}

func (c ConstPtr[E]) Get() E     { return *c.p }
func (c ConstPtr[E]) At(n int) E { return *c.Advance(n).p }

// Addr returns the current position as an untyped address.
func (c ConstPtr[E]) Addr() unsafe.Pointer { return unsafe.Pointer(c.p) }

// addrDistance converts an address difference into an element count.
// Zero-size elements occupy no memory, so every position of such a
// sequence coincides and the distance is 0.
func addrDistance(from, to unsafe.Pointer, size uintptr) int {
	if size == 0 {
		return 0
	}
	return int(uintptr(to)-uintptr(from)) / int(size)
}
