// SPDX-License-Identifier: EPL-2.0

package panner

import (
	"fmt"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/graph"
	"github.com/ik5/pangraph/utils"
)

// Node is a mono-in, stereo-out panning node with click-free pan
// changes.
//
// The pan target may be set from any thread; the render thread observes
// it once per block through a single atomic load and ramps the rendered
// pan toward it over SmoothingWindow samples. Everything except the
// target is owned by the render thread and never locked.
type Node struct {
	graph.Base

	g *graph.Graph

	// target is the only field shared across the control/render
	// boundary.
	target audio.AtomicFloat32

	// Ramp state, render thread only.
	currentPan float32 // pan actually rendered this sample
	lastTarget float32 // target the current ramp is heading to
	remaining  int     // samples left in the ramp; 0 means at rest
	increment  float32 // per-sample pan delta while ramping
}

// Init registers a new panner node with g. initialPan is clamped into
// [-1, 1] and the node starts at rest there: no ramp runs until the
// target first changes. Registration errors from the graph are
// propagated and leave no node behind.
func Init(g *graph.Graph, initialPan float32) (*Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	pan := utils.Clamp32(initialPan, -1, 1)
	n := &Node{
		g:          g,
		currentPan: pan,
		lastTarget: pan,
	}
	n.target.Store(pan)

	if err := g.AddNode(n); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return n, nil
}

// Uninit detaches the node from its graph. Calling it on a nil node is
// a no-op. The caller must make sure the render thread is no longer
// inside ProcessFrames; the graph does not reference the node
// afterwards.
func (n *Node) Uninit() {
	if n == nil || n.g == nil {
		return
	}
	n.g.RemoveNode(n)
}

// Info declares the node's buses: one mono input, one stereo output.
func (n *Node) Info() graph.Info {
	return graph.Info{
		InputChannels:  []int{1},
		OutputChannels: []int{2},
	}
}

// SetPan requests a new pan position from any thread. The value is
// clamped into [-1, 1] and stored atomically; the render thread picks
// it up at the start of a later block. Concurrent calls are safe and
// the last store wins.
func (n *Node) SetPan(pan float32) {
	n.target.Store(utils.Clamp32(pan, -1, 1))
}

// Pan returns the most recently requested pan target. This is the
// control-plane value, not necessarily the pan currently being
// rendered: a ramp toward it may still be in flight.
func (n *Node) Pan() float32 {
	return n.target.Load()
}

// ProcessFrames pans frames mono input samples into interleaved stereo.
//
// The shared target is loaded exactly once per block. A changed target
// is only adopted when the node is at rest; a ramp already in flight
// runs to completion first, so rapid-fire changes cannot restart the
// ramp mid-way and glitch. When a ramp finishes, the rendered pan is
// snapped exactly onto its target, eliminating the drift that repeated
// float additions accumulate.
func (n *Node) ProcessFrames(in, out [][]float32, frames int) {
	if frames == 0 {
		return
	}

	target := n.target.Load()
	if target != n.lastTarget && n.remaining == 0 {
		n.remaining = SmoothingWindow
		n.increment = (target - n.currentPan) / SmoothingWindow
		n.lastTarget = target
	}

	mono := in[0]
	stereo := out[0]

	for i := 0; i < frames; i++ {
		if n.remaining > 0 {
			n.currentPan += n.increment
			n.remaining--
			if n.remaining == 0 {
				n.currentPan = n.lastTarget
			}
		}

		left, right := Gains(n.currentPan)
		s := mono[i]
		stereo[2*i] = s * left
		stereo[2*i+1] = s * right
	}
}
