// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

// Tagged is satisfied by any cursor type that embeds one of the
// capability tags. Types outside the tag system fail this constraint at
// compile time: there is no runtime fallback.
type Tagged interface {
	capabilityTagged()
}

// Input is the constraint for single-pass forward traversal. Every
// operation yields a new cursor value; positions compare with ==.
//
// The traversal constraints carry no element type so that calls like
// Distance(first, last) infer all type arguments from their operands.
// Element access is the separate [Source]/[Sink] axis.
type Input[C any] interface {
	comparable
	Tagged
	capabilityInput()
	Next() C
}

// Forward refines Input with the multi-pass guarantee. The guarantee is
// semantic: independent copies traverse the same elements.
type Forward[C any] interface {
	Input[C]
	capabilityForward()
}

// Bidirectional refines Forward with single-step backward traversal.
type Bidirectional[C any] interface {
	Forward[C]
	capabilityBidirectional()
	Prev() C
}

// RandomAccess refines Bidirectional with constant-time positional
// arithmetic. Distance(o) returns the number of forward steps from the
// receiver to o; both positions must lie within the same sequence.
type RandomAccess[C any] interface {
	Bidirectional[C]
	capabilityRandomAccess()
	Advance(n int) C
	Distance(C) int
}

// Source is the constraint for cursors yielding elements of type E.
type Source[C, E any] interface {
	Input[C]
	Get() E
}

// Sink is the constraint for output cursors accepting elements of type
// E. Put stores an element at the current position and returns the
// cursor advanced one step.
//
// Output capability is structural: a mutable random-access cursor such
// as [Ptr] satisfies Sink without carrying [OutputTag]. The tag exists
// for write-only cursor types to self-declare.
type Sink[C, E any] interface {
	Put(E) C
}
