// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astl

// Capability tags are zero-size markers forming a single-branch
// refinement chain: Input → Forward → Bidirectional → RandomAccess.
// Each stronger tag embeds the weaker one, so its promoted marker-method
// set is a superset and the tag is usable wherever a weaker one is
// accepted. The marker methods are unexported: the chain is closed and
// no package can add a capability level.
//
// A cursor type self-declares its capability by embedding exactly one
// tag and carrying the operation methods that capability requires.

// InputTag marks single-pass forward traversal: advance one step, read
// the element at the current position, compare positions.
type InputTag struct{}

func (InputTag) capabilityTagged() {}
func (InputTag) capabilityInput()  {}

// OutputTag marks write-only single-pass traversal. It is not part of
// the refinement chain: an output cursor accepts elements and guarantees
// nothing about reading or revisiting positions.
type OutputTag struct{}

func (OutputTag) capabilityTagged() {}
func (OutputTag) capabilityOutput() {}

// ForwardTag refines InputTag with the multi-pass guarantee: independent
// copies of a forward cursor traverse the same elements.
type ForwardTag struct{ InputTag }

func (ForwardTag) capabilityForward() {}

// BidirectionalTag refines ForwardTag with single-step backward
// traversal.
type BidirectionalTag struct{ ForwardTag }

func (BidirectionalTag) capabilityBidirectional() {}

// RandomAccessTag refines BidirectionalTag with constant-time positional
// arithmetic: advance by a signed distance, subtract positions, read at
// an offset.
type RandomAccessTag struct{ BidirectionalTag }

func (RandomAccessTag) capabilityRandomAccess() {}
