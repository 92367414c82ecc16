// SPDX-License-Identifier: EPL-2.0

package panner

import "math"

// SmoothingWindow is the fixed number of samples a pan change is
// interpolated over. Every change takes exactly this long regardless of
// its size; larger jumps simply move faster per sample. At 44.1kHz this
// is about 5.8ms, short enough to feel immediate and long enough to be
// click-free.
const SmoothingWindow = 256

// Gains maps a pan position to equal-power per-channel gains.
//
// The pan value is mapped linearly onto the angle range [0, π/2] and the
// gains are its cosine and sine, so left²+right² == 1 everywhere: the
// perceived loudness stays constant across the pan range, unlike a
// linear crossfade which dips in the center. pan must already be
// clamped into [-1, 1]; Gains is pure and does no validation.
func Gains(pan float32) (left, right float32) {
	theta := float64(pan+1) * (math.Pi / 4)
	return float32(math.Cos(theta)), float32(math.Sin(theta))
}
