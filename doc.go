// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package astl provides capability-classified cursors over sequences:
// a cursor type declares what traversal it supports, the declaration is
// recovered purely from the type, and generic algorithms select their
// strategy from it at no runtime cost.
//
// # Architecture
//
//   - Tags: [InputTag], [ForwardTag], [BidirectionalTag],
//     [RandomAccessTag] form a closed refinement chain; [OutputTag]
//     marks write-only cursors. A cursor type self-declares by embedding
//     one tag.
//   - Resolution: the capability constraints [Input], [Forward],
//     [Bidirectional], [RandomAccess], [Source] and [Sink] are the
//     compile-time classification; [KindOf] and [TraitsOf] reify the
//     resolved bundle. Unclassifiable types do not compile.
//   - Addresses: [Ptr] and [ConstPtr] are raw-address cursors with the
//     random-access bundle built in for any element type, at exactly
//     raw-pointer cost.
//   - Wrapper: [Wrap] binds a primitive cursor to a nominal sequence
//     type via [code.hybscloud.com/kont.Phantom], delegating every
//     operation. [Freeze] widens mutable to read-only, never back;
//     [Wrap.Base] unwraps for bulk raw-memory paths.
//   - Dispatch: [Distance], [AdvanceBy] and [Copy] each expose one
//     entry point and pick constant-time arithmetic or a linear walk
//     from the cursor's resolved tag.
//
// # Streams
//
//   - [Drain] and [Feed] turn bounded lock-free SPSC queues from
//     [code.hybscloud.com/lfq] into input and output cursors. Writers
//     wait past the [code.hybscloud.com/iox.ErrWouldBlock] boundary
//     with adaptive backoff; drains end at it.
//   - [Values] and [FromSeq] bridge cursor ranges to and from the
//     standard iter.Seq protocol.
//
// # Example
//
//	arr := []int{10, 20, 30, 40, 50}
//	n := astl.Distance(astl.First(arr), astl.Limit(arr)) // 5, constant time
//
//	type seq struct{}
//	w := astl.Begin[seq](arr).Advance(2)
//	r := astl.Freeze(w)
//	_ = astl.SamePos(w, r) // true: same position, read-only view
//	_ = n
package astl
