// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl_test

import (
	astl "github.com/allwinner-ics/platform-external-astl"
)

// seqA is a nominal sequence type for wrapped-cursor tests.
type seqA struct{}

// node is a singly-linked list node for forward-only traversal tests.
type node struct {
	val  int
	next *node
}

// listCursor is a forward-only cursor over a singly-linked list. It
// counts advances through a shared counter so tests can observe which
// strategy a dispatched algorithm selected.
type listCursor struct {
	astl.ForwardTag
	n     *node
	steps *int
}

func (c listCursor) Next() listCursor {
	*c.steps++
	return listCursor{n: c.n.next, steps: c.steps}
}

func (c listCursor) Get() int { return c.n.val }

// makeList builds a list from vals and returns its begin and end
// cursors sharing one step counter.
func makeList(vals ...int) (listCursor, listCursor) {
	var head *node
	for i := len(vals) - 1; i >= 0; i-- {
		head = &node{val: vals[i], next: head}
	}
	steps := new(int)
	return listCursor{n: head, steps: steps}, listCursor{steps: steps}
}

// walkCursor is a forward cursor over a slice by index with no
// positional arithmetic, forcing the linear strategy.
type walkCursor struct {
	astl.ForwardTag
	s *[]int
	i int
}

func (c walkCursor) Next() walkCursor { return walkCursor{s: c.s, i: c.i + 1} }
func (c walkCursor) Get() int         { return (*c.s)[c.i] }

// walkRange returns begin and end walk cursors over s.
func walkRange(s *[]int) (walkCursor, walkCursor) {
	return walkCursor{s: s}, walkCursor{s: s, i: len(*s)}
}

// hopCursor is a bidirectional cursor over a slice by index, without
// random-access arithmetic.
type hopCursor struct {
	astl.BidirectionalTag
	s *[]int
	i int
}

func (c hopCursor) Next() hopCursor { return hopCursor{s: c.s, i: c.i + 1} }
func (c hopCursor) Prev() hopCursor { return hopCursor{s: c.s, i: c.i - 1} }
func (c hopCursor) Get() int        { return (*c.s)[c.i] }
