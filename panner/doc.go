// SPDX-License-Identifier: EPL-2.0

// Package panner implements a mono-to-stereo equal-power panning node.
//
// # Pan Law
//
// The pan position is a scalar in [-1, 1]: -1 is full left, 0 is
// center, +1 is full right. Gains maps it through the equal-power law
//
//	θ = (pan + 1) · π/4
//	left = cos(θ), right = sin(θ)
//
// so that left² + right² == 1 for every position. At center both gains
// are √2/2 ≈ 0.70711, not 0.5, which is what keeps the perceived
// loudness flat across the stereo field.
//
// # Smoothing
//
// Jumping the pan between two blocks would step the per-channel gains
// and click. Instead the node ramps its rendered pan linearly toward
// the requested target over a fixed SmoothingWindow of 256 samples,
// then snaps exactly onto the target. A target change that arrives
// while a ramp is still running is deferred until that ramp completes;
// the cost is at most one window of extra latency, the gain is that a
// burst of rapid changes can never restart the ramp into a glitch.
//
// # Threading
//
// SetPan and Pan may be called from any thread. They touch only one
// atomic float; there is no lock anywhere on the render path, so a
// control thread can never priority-invert the render thread. The
// render thread reads the target once per block inside ProcessFrames,
// which the hosting graph invokes.
//
// # Usage
//
//	g, _ := graph.New(44100)
//	pn, err := panner.Init(g, 0)
//	if err != nil {
//	    // graph rejected the node
//	}
//	defer pn.Uninit()
//
//	// wire: source -> panner -> endpoint
//	g.Attach(src, 0, pn, 0)
//	g.AttachToEndpoint(pn, 0)
//
//	pn.SetPan(-0.5) // from any thread, any time
package panner
