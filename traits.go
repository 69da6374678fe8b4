// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

import (
	"reflect"
)

// Kind identifies a capability level. Classification itself is static:
// [KindOf] resolves the Kind from the cursor type alone, and algorithms
// never branch on a Kind value at runtime.
type Kind uint8

const (
	KindOutput Kind = iota
	KindInput
	KindForward
	KindBidirectional
	KindRandomAccess
)

func (k Kind) String() string {
	switch k {
	case KindOutput:
		return "output"
	case KindInput:
		return "input"
	case KindForward:
		return "forward"
	case KindBidirectional:
		return "bidirectional"
	case KindRandomAccess:
		return "random-access"
	}
	return "unknown"
}

// KindOf reports the strongest capability the cursor type C declares.
// Types that declare no capability tag fail to compile.
func KindOf[C Tagged]() Kind {
	var zero C
	switch any(zero).(type) {
	case interface{ capabilityRandomAccess() }:
		return KindRandomAccess
	case interface{ capabilityBidirectional() }:
		return KindBidirectional
	case interface{ capabilityForward() }:
		return KindForward
	case interface{ capabilityInput() }:
		return KindInput
	}
	// capabilityTagged is closed: anything else carries OutputTag.
	return KindOutput
}

// Traits is the resolved trait bundle of a cursor type: its capability,
// element type, distance type, and element access. Go has no const
// qualifier, so the read-only/mutable split of the pointer and reference
// slots collapses into Pointer plus the Mutable flag.
type Traits struct {
	Kind     Kind
	Value    reflect.Type
	Distance reflect.Type
	Pointer  reflect.Type
	Mutable  bool
}

// TraitsOf resolves the trait bundle for a readable cursor type. E must
// be the cursor's element type; a mismatch fails to compile. Exactly one
// bundle resolves per cursor type.
//
// Output-only cursors carry no element metadata; classify them with
// [KindOf].
func TraitsOf[C Source[C, E], E any]() Traits {
	var zero C
	_, direct := any(zero).(interface{ Set(E) })
	_, wrapped := any(zero).(interface{ Base() Ptr[E] })
	return Traits{
		Kind:     KindOf[C](),
		Value:    reflect.TypeFor[E](),
		Distance: reflect.TypeFor[int](),
		Pointer:  reflect.TypeFor[*E](),
		Mutable:  direct || wrapped,
	}
}
