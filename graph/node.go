// SPDX-License-Identifier: EPL-2.0

package graph

// Info describes a node's bus layout: the channel count of every input
// and output bus. Bus buffers carry interleaved float32 samples, so a
// bus with 2 channels holds frames*2 values per block.
type Info struct {
	InputChannels  []int
	OutputChannels []int
}

// Node is a processing participant in a Graph.
//
// A Node is implemented by embedding Base as the first field of the
// node's own state and providing Info and ProcessFrames. The embedded
// Base is how the graph addresses the node; the node's package owns
// everything after it.
//
// ProcessFrames is invoked by the graph's render pull with one
// interleaved buffer per input bus and one per output bus, each valid
// for exactly frames frames. It runs on the render thread only and must
// not block, lock, or allocate.
type Node interface {
	Info() Info
	ProcessFrames(in, out [][]float32, frames int)

	// base is satisfied by embedding Base.
	base() *nodeBase
}

// Base is the common node state embedded (first) in every node
// implementation. The zero value is ready; AddNode wires it up.
type Base struct {
	nb nodeBase
}

func (b *Base) base() *nodeBase { return &b.nb }

// attachment connects one upstream output bus to a downstream input bus.
type attachment struct {
	src    *nodeBase
	outBus int
}

// nodeBase is the graph's private per-node bookkeeping.
type nodeBase struct {
	g    *Graph
	self Node
	info Info

	// inputs[i] holds every upstream output attached to input bus i;
	// they are summed when the bus is read.
	inputs [][]attachment

	// Scratch buffers reused across blocks. Grown on demand, so the
	// steady-state render pull does not allocate.
	inBufs  [][]float32
	outBufs [][]float32

	// seq marks the render block this node was last processed in, so a
	// node feeding several inputs is processed once per block.
	seq uint64
}

// attached reports whether the node is currently registered with a graph.
func (nb *nodeBase) attached() bool { return nb.g != nil }
