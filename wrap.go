// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"unsafe"

	"code.hybscloud.com/kont"
)

// Primitive is the constraint for primitive cursors a [Wrap] can carry:
// random-access traversal, element reads, and address identity. [Ptr]
// and [ConstPtr] are the canonical primitives.
//
// Go method sets cannot vary with a type argument, so the wrapper
// requires its primitive to be random-access, the raw-address case the
// wrapper exists for. Capability-limited cursor types already have
// first-class type identity and need no wrapping.
type Primitive[P, E any] interface {
	comparable
	Next() P
	Prev() P
	Advance(n int) P
	Distance(P) int
	Get() E
	At(n int) E
	Addr() unsafe.Pointer
}

// Mutable is the constraint for primitives that can write the current
// element.
type Mutable[P, E any] interface {
	Primitive[P, E]
	Set(E)
}

// Wrap gives a primitive cursor first-class type identity bound to a
// nominal sequence type S. S is a phantom: it distinguishes wrappers of
// unrelated sequences and never stores state. A Wrap owns its primitive
// by value, so copying the wrapper copies the position, and every
// operation delegates to the primitive, so the wrapper has exactly its
// primitive's cost and trait bundle.
//
// The zero Wrap holds a default-constructed primitive.
type Wrap[S, E any, P Primitive[P, E]] struct {
	kont.Phantom[S]
	RandomAccessTag
	current P
}

// Over wraps the primitive cursor p, binding it to the sequence type S.
func Over[S, E any, P Primitive[P, E]](p P) Wrap[S, E, P] {
	return Wrap[S, E, P]{current: p}
}

// Begin returns a wrapped mutable address cursor at position 0 of s.
func Begin[S, E any](s []E) Wrap[S, E, Ptr[E]] {
	return Over[S, E](First(s))
}

// End returns the wrapped one-past-end cursor of s.
func End[S, E any](s []E) Wrap[S, E, Ptr[E]] {
	return Over[S, E](Limit(s))
}

func (w Wrap[S, E, P]) Next() Wrap[S, E, P] { return Wrap[S, E, P]{current: w.current.Next()} }
func (w Wrap[S, E, P]) Prev() Wrap[S, E, P] { return Wrap[S, E, P]{current: w.current.Prev()} }

// Advance returns the position n elements forward, backward for
// negative n.
func (w Wrap[S, E, P]) Advance(n int) Wrap[S, E, P] {
	return Wrap[S, E, P]{current: w.current.Advance(n)}
}

// Distance returns the number of forward steps from w to o. Both
// positions must be drawn from the same sequence.
func (w Wrap[S, E, P]) Distance(o Wrap[S, E, P]) int {
	return w.current.Distance(o.current)
}

func (w Wrap[S, E, P]) Get() E     { return w.current.Get() }
func (w Wrap[S, E, P]) At(n int) E { return w.current.At(n) }

// Addr returns the current position as an untyped address.
func (w Wrap[S, E, P]) Addr() unsafe.Pointer { return w.current.Addr() }

// Base returns the wrapped primitive. Bulk routines unwrap a cursor and
// branch to raw-memory operation when the primitive is address-like.
func (w Wrap[S, E, P]) Base() P { return w.current }

// Store writes v at w's current position. It compiles only for wrappers
// over mutable primitives: write attempts through a read-only wrapper
// are rejected at compile time.
func Store[S, E any, P Mutable[P, E]](w Wrap[S, E, P], v E) {
	w.current.Set(v)
}

// Freeze widens a mutable-address wrapper to its read-only counterpart,
// preserving the position. The reverse conversion does not exist.
func Freeze[S, E any](w Wrap[S, E, Ptr[E]]) Wrap[S, E, ConstPtr[E]] {
	return Over[S, E](w.current.Const())
}

// SamePos reports whether two wrappers over the same nominal sequence
// type denote the same position, even when their primitive
// representations differ: a mutable wrapper compares equal to its
// frozen counterpart at the same address.
func SamePos[S, E any, A Primitive[A, E], B Primitive[B, E]](a Wrap[S, E, A], b Wrap[S, E, B]) bool {
	return a.current.Addr() == b.current.Addr()
}
