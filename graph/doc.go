// SPDX-License-Identifier: EPL-2.0

// Package graph implements the node graph that hosts audio processing
// nodes and drives block rendering.
//
// # Nodes
//
// A node declares its bus layout through Info and does its work in
// ProcessFrames. Implementations embed Base as their first field; the
// graph addresses every node through that embedded Base, while the
// node's own package owns the rest of the struct:
//
//	type Gain struct {
//	    graph.Base
//	    gain float32
//	}
//
//	func (n *Gain) Info() graph.Info {
//	    return graph.Info{InputChannels: []int{2}, OutputChannels: []int{2}}
//	}
//
//	func (n *Gain) ProcessFrames(in, out [][]float32, frames int) {
//	    for i := range frames * 2 {
//	        out[0][i] = in[0][i] * n.gain
//	    }
//	}
//
// # Wiring
//
// Nodes are registered with AddNode and routed with Attach. The graph
// ends in a built-in stereo endpoint; AttachToEndpoint routes a node's
// output there. Multiple outputs attached to the same input bus are
// summed. Mono output may feed a stereo input and vice versa; any
// other channel mismatch is rejected at Attach time.
//
// # Rendering
//
// ReadFrames pulls one block of interleaved stereo through the graph:
//
//	g, _ := graph.New(44100)
//	// ... add and attach nodes ...
//	buf := make([]float32, 512*graph.EndpointChannels)
//	n := g.ReadFrames(buf)
//
// ReadFrames is driven by a single render thread, typically under a
// real-time deadline. Node ProcessFrames implementations therefore must
// not block or allocate; the graph itself reuses its block buffers so
// steady-state rendering is allocation-free.
//
// # Threading
//
// AddNode, RemoveNode and Attach are safe to call from any thread.
// They are control-plane operations: they take the graph lock, which
// ReadFrames also holds for the duration of a block. Per-node
// parameters that must change mid-playback without touching that lock
// (for example the panner's target) are each node's own business and
// are typically atomics.
package graph
