// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl_test

import (
	"reflect"
	"testing"

	astl "github.com/allwinner-ics/platform-external-astl"
)

func TestKindOfAddressCursors(t *testing.T) {
	if k := astl.KindOf[astl.Ptr[int]](); k != astl.KindRandomAccess {
		t.Fatalf("Ptr[int] kind = %v, want %v", k, astl.KindRandomAccess)
	}
	if k := astl.KindOf[astl.ConstPtr[int]](); k != astl.KindRandomAccess {
		t.Fatalf("ConstPtr[int] kind = %v, want %v", k, astl.KindRandomAccess)
	}
}

func TestKindOfDeclaredCursors(t *testing.T) {
	if k := astl.KindOf[listCursor](); k != astl.KindForward {
		t.Fatalf("listCursor kind = %v, want %v", k, astl.KindForward)
	}
	if k := astl.KindOf[hopCursor](); k != astl.KindBidirectional {
		t.Fatalf("hopCursor kind = %v, want %v", k, astl.KindBidirectional)
	}
	if k := astl.KindOf[astl.QueueCursor[int]](); k != astl.KindInput {
		t.Fatalf("QueueCursor kind = %v, want %v", k, astl.KindInput)
	}
	if k := astl.KindOf[astl.QueueWriter[int]](); k != astl.KindOutput {
		t.Fatalf("QueueWriter kind = %v, want %v", k, astl.KindOutput)
	}
	if k := astl.KindOf[astl.SeqCursor[int]](); k != astl.KindInput {
		t.Fatalf("SeqCursor kind = %v, want %v", k, astl.KindInput)
	}
}

func TestKindOfWrapDelegates(t *testing.T) {
	// The wrapper's bundle is its primitive's bundle.
	if k := astl.KindOf[astl.Wrap[seqA, int, astl.Ptr[int]]](); k != astl.KindRandomAccess {
		t.Fatalf("wrapped Ptr kind = %v, want %v", k, astl.KindRandomAccess)
	}
	if k := astl.KindOf[astl.Wrap[seqA, int, astl.ConstPtr[int]]](); k != astl.KindRandomAccess {
		t.Fatalf("wrapped ConstPtr kind = %v, want %v", k, astl.KindRandomAccess)
	}
}

func TestTraitsOfAddressCursors(t *testing.T) {
	mut := astl.TraitsOf[astl.Ptr[int], int]()
	if mut.Kind != astl.KindRandomAccess {
		t.Fatalf("Ptr[int] traits kind = %v, want %v", mut.Kind, astl.KindRandomAccess)
	}
	if !mut.Mutable {
		t.Fatal("Ptr[int] traits not mutable")
	}
	if mut.Value != reflect.TypeFor[int]() {
		t.Fatalf("Ptr[int] value type = %v, want int", mut.Value)
	}
	if mut.Distance != reflect.TypeFor[int]() {
		t.Fatalf("Ptr[int] distance type = %v, want int", mut.Distance)
	}
	if mut.Pointer != reflect.TypeFor[*int]() {
		t.Fatalf("Ptr[int] pointer type = %v, want *int", mut.Pointer)
	}

	ro := astl.TraitsOf[astl.ConstPtr[int], int]()
	if ro.Kind != astl.KindRandomAccess {
		t.Fatalf("ConstPtr[int] traits kind = %v, want %v", ro.Kind, astl.KindRandomAccess)
	}
	if ro.Mutable {
		t.Fatal("ConstPtr[int] traits mutable, want read-only")
	}
}

func TestTraitsOfWrapDelegates(t *testing.T) {
	if tr := astl.TraitsOf[astl.Wrap[seqA, int, astl.Ptr[int]], int](); !tr.Mutable {
		t.Fatal("wrapper over Ptr not mutable")
	}
	if tr := astl.TraitsOf[astl.Wrap[seqA, int, astl.ConstPtr[int]], int](); tr.Mutable {
		t.Fatal("wrapper over ConstPtr mutable, want read-only")
	}
}

func TestTraitsOfDeclaredCursor(t *testing.T) {
	tr := astl.TraitsOf[listCursor, int]()
	if tr.Kind != astl.KindForward {
		t.Fatalf("listCursor traits kind = %v, want %v", tr.Kind, astl.KindForward)
	}
	if tr.Mutable {
		t.Fatal("listCursor traits mutable, want read-only")
	}
}

func TestKindString(t *testing.T) {
	want := map[astl.Kind]string{
		astl.KindOutput:        "output",
		astl.KindInput:         "input",
		astl.KindForward:       "forward",
		astl.KindBidirectional: "bidirectional",
		astl.KindRandomAccess:  "random-access",
	}
	for k, s := range want {
		if k.String() != s {
			t.Fatalf("Kind(%d).String() = %q, want %q", uint8(k), k.String(), s)
		}
	}
}
