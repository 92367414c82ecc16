// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/graph"
)

// DefaultSampleRate is the rate an Engine renders at unless told
// otherwise.
const DefaultSampleRate = 44100

// Engine owns a node graph and the sounds playing through it, and
// renders stereo audio on demand.
//
// The engine does not open an audio device or spawn a render thread:
// whoever calls ReadFrames is the render thread. That keeps the engine
// usable for offline rendering and for embedding under a host that
// already drives a playback callback.
type Engine struct {
	g      *graph.Graph
	volume audio.AtomicFloat32
	frames atomic.Uint64

	mu     sync.Mutex
	sounds map[string]*Sound
}

// New creates an engine rendering at sampleRate Hz. A non-positive rate
// selects DefaultSampleRate.
func New(sampleRate int) (*Engine, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	g, err := graph.New(sampleRate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		g:      g,
		sounds: make(map[string]*Sound),
	}
	e.volume.Store(1)

	return e, nil
}

// SampleRate returns the engine's render rate in Hz.
func (e *Engine) SampleRate() int { return e.g.SampleRate() }

// Graph exposes the engine's node graph for wiring additional nodes.
func (e *Engine) Graph() *graph.Graph { return e.g }

// SetVolume sets the master volume applied to the rendered output.
// Negative values are clamped to silence; values above 1 amplify. Safe
// from any thread.
func (e *Engine) SetVolume(v float32) {
	if v < 0 {
		v = 0
	}
	e.volume.Store(v)
}

// Volume returns the current master volume.
func (e *Engine) Volume() float32 { return e.volume.Load() }

// ReadFrames renders the next len(dst)/2 frames of interleaved stereo
// into dst, applies the master volume, and returns the frame count.
// The caller is the render thread.
func (e *Engine) ReadFrames(dst []float32) int {
	n := e.g.ReadFrames(dst)
	if n == 0 {
		return 0
	}

	if v := e.volume.Load(); v != 1 {
		for i := 0; i < n*graph.EndpointChannels; i++ {
			dst[i] *= v
		}
	}

	e.frames.Add(uint64(n))
	return n
}

// TimeFrames returns the number of frames rendered so far.
func (e *Engine) TimeFrames() uint64 { return e.frames.Load() }

// TimeSeconds returns the rendered time in seconds.
func (e *Engine) TimeSeconds() float64 {
	return float64(e.frames.Load()) / float64(e.g.SampleRate())
}

// Sound returns the sound registered under id, if any.
func (e *Engine) Sound(id string) (*Sound, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[id]
	return s, ok
}

// Close tears down every sound. The render thread must be quiesced
// first.
func (e *Engine) Close() error {
	e.mu.Lock()
	all := make([]*Sound, 0, len(e.sounds))
	for _, s := range e.sounds {
		all = append(all, s)
	}
	e.mu.Unlock()

	var errs []error
	for _, s := range all {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// register adds a sound under its id.
func (e *Engine) register(s *Sound) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sounds[s.id]; ok {
		return ErrDuplicateSoundID
	}
	e.sounds[s.id] = s

	return nil
}

// unregister drops a sound; safe to call twice.
func (e *Engine) unregister(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.sounds, id)
}
