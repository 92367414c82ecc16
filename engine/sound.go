// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/panner"
)

// Sound is a playable source wired through its own panner into the
// engine's graph: source node -> panner -> endpoint.
//
// Playback control (Start, Stop, SetPan, SetVolume, SetLooping) is safe
// from any thread while the render thread pulls audio; every control
// flag crosses to the render side through an atomic.
type Sound struct {
	id   string
	e    *Engine
	src  audio.Source // as handed in, closed on Close
	mono audio.Source // mono view the node pulls from
	node *sourceNode
	pan  *panner.Node
}

// NewSound wires src into the engine under the given id. Multichannel
// sources are downmixed to mono before panning. The source's sample
// rate must match the engine's; the engine performs no sample rate
// conversion.
//
// The sound starts stopped, centered, at full volume.
func NewSound(e *Engine, src audio.Source, id string) (*Sound, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if id == "" {
		return nil, ErrEmptySoundID
	}
	if src.SampleRate() != e.SampleRate() {
		return nil, ErrSampleRateMismatch
	}

	mono := src
	if src.Channels() != 1 {
		mono = audio.NewMonoMixer(src)
	}

	s := &Sound{
		id:   id,
		e:    e,
		src:  src,
		mono: mono,
		node: newSourceNode(mono),
	}

	if err := e.register(s); err != nil {
		return nil, err
	}

	g := e.Graph()
	if err := g.AddNode(s.node); err != nil {
		e.unregister(id)
		return nil, fmt.Errorf("%w", err)
	}

	pan, err := panner.Init(g, 0)
	if err != nil {
		g.RemoveNode(s.node)
		e.unregister(id)
		return nil, fmt.Errorf("%w", err)
	}
	s.pan = pan

	if err := g.Attach(s.node, 0, pan, 0); err != nil {
		s.teardown()
		return nil, fmt.Errorf("%w", err)
	}
	if err := g.AttachToEndpoint(pan, 0); err != nil {
		s.teardown()
		return nil, fmt.Errorf("%w", err)
	}

	return s, nil
}

// ID returns the sound's identifier.
func (s *Sound) ID() string { return s.id }

// Start begins (or resumes) playback. A sound that already ran to
// completion is rewound first; if its source cannot rewind, Start
// reports audio.ErrNotRewindable.
func (s *Sound) Start() error {
	if s.node.finished.Load() {
		if err := s.rewind(); err != nil {
			return err
		}
		s.node.finished.Store(false)
	}
	s.node.playing.Store(true)

	return nil
}

// Stop pauses playback. The sound keeps its position; Start resumes it.
func (s *Sound) Stop() {
	s.node.playing.Store(false)
}

// IsPlaying reports whether the sound is currently feeding audio into
// the graph.
func (s *Sound) IsPlaying() bool {
	return s.node.playing.Load() && !s.node.finished.Load()
}

// IsFinished reports whether a non-looping sound ran out of source
// data.
func (s *Sound) IsFinished() bool {
	return s.node.finished.Load()
}

// SetPan requests a new stereo position in [-1, 1]; out-of-range values
// are clamped. The change is smoothed by the panner, never stepped.
func (s *Sound) SetPan(pan float32) { s.pan.SetPan(pan) }

// Pan returns the most recently requested pan position.
func (s *Sound) Pan() float32 { return s.pan.Pan() }

// SetVolume sets the sound's own gain. Negative values are clamped to
// silence.
func (s *Sound) SetVolume(v float32) {
	if v < 0 {
		v = 0
	}
	s.node.gain.Store(v)
}

// Volume returns the sound's gain.
func (s *Sound) Volume() float32 { return s.node.gain.Load() }

// SetLooping makes the sound restart from the beginning when its source
// is exhausted. Looping requires a rewindable source.
func (s *Sound) SetLooping(looping bool) error {
	if looping {
		// Check the handed-in source, not the mono view: MonoMixer
		// always forwards Rewind, even when its source cannot.
		if _, ok := s.src.(audio.Rewinder); !ok {
			return audio.ErrNotRewindable
		}
	}
	s.node.looping.Store(looping)

	return nil
}

// Close detaches the sound from the graph and closes its source. The
// render thread must not be inside a block when nodes are torn down;
// the graph lock guarantees that.
func (s *Sound) Close() error {
	s.teardown()

	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *Sound) teardown() {
	g := s.e.Graph()
	if s.pan != nil {
		s.pan.Uninit()
	}
	g.RemoveNode(s.node)
	s.e.unregister(s.id)
}

// rewind seeks the source back to its start. Only called when the
// render side is no longer reading it.
func (s *Sound) rewind() error {
	rw, ok := s.mono.(audio.Rewinder)
	if !ok {
		return audio.ErrNotRewindable
	}
	if err := rw.Rewind(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
