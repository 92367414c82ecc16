// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"sync/atomic"
)

// AtomicFloat32 is a float32 value that supports atomic Store and Load.
//
// A float32 cannot be used with sync/atomic directly, so the value is
// kept as its IEEE-754 bit pattern in a uint32. Store and Load are
// sequentially consistent, which is stronger than the release/acquire
// ordering a control-thread-to-render-thread handoff needs.
//
// The zero value holds 0.0 and is ready to use.
type AtomicFloat32 struct {
	bits atomic.Uint32
}

// Store atomically replaces the value with v. Safe to call from any
// thread, concurrently with Load and with other Store calls
// (last write wins).
func (f *AtomicFloat32) Store(v float32) {
	f.bits.Store(math.Float32bits(v))
}

// Load atomically returns the current value. A reader never observes
// a torn value.
func (f *AtomicFloat32) Load() float32 {
	return math.Float32frombits(f.bits.Load())
}
