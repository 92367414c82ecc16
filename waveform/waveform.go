// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"io"
	"math"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/utils"
)

// Shape selects the generated waveform.
type Shape int

const (
	Sine Shape = iota
	Square
	Triangle
	Sawtooth
)

// Waveform generates a mono test tone implementing audio.Source.
//
// Frequency and amplitude may be changed while the waveform is being
// rendered; both are read through atomics, and frequency changes are
// applied through a running phase accumulator so the output stays
// continuous.
type Waveform struct {
	shape      Shape
	sampleRate int

	freq audio.AtomicFloat32
	amp  audio.AtomicFloat32

	phase float64 // cycle position in [0, 1), render side only
	pos   int     // samples generated so far
	total int     // total samples to generate; < 0 means endless
}

// New creates an endless waveform generator. amplitude is clamped into
// [0, 1]; a non-positive frequency or sample rate is an error.
func New(shape Shape, sampleRate int, frequency, amplitude float64) (*Waveform, error) {
	return newWaveform(shape, sampleRate, frequency, amplitude, -1)
}

// NewFinite creates a waveform generator that ends after seconds of
// audio and then reports io.EOF.
func NewFinite(shape Shape, sampleRate int, frequency, amplitude, seconds float64) (*Waveform, error) {
	if seconds < 0 {
		return nil, ErrInvalidDuration
	}
	return newWaveform(shape, sampleRate, frequency, amplitude, int(seconds*float64(sampleRate)))
}

func newWaveform(shape Shape, sampleRate int, frequency, amplitude float64, total int) (*Waveform, error) {
	if shape < Sine || shape > Sawtooth {
		return nil, ErrUnknownShape
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if frequency <= 0 {
		return nil, ErrInvalidFrequency
	}

	w := &Waveform{
		shape:      shape,
		sampleRate: sampleRate,
		total:      total,
	}
	w.freq.Store(float32(frequency))
	w.amp.Store(utils.Clamp32(float32(amplitude), 0, 1))

	return w, nil
}

func (w *Waveform) SampleRate() int { return w.sampleRate }
func (w *Waveform) Channels() int   { return 1 }
func (w *Waveform) BufSize() int    { return 4096 }
func (w *Waveform) Close() error    { return nil }

// SetFrequency changes the tone frequency in Hz. Safe from any thread;
// non-positive values are ignored.
func (w *Waveform) SetFrequency(frequency float64) {
	if frequency <= 0 {
		return
	}
	w.freq.Store(float32(frequency))
}

// SetAmplitude changes the peak amplitude, clamped into [0, 1]. Safe
// from any thread.
func (w *Waveform) SetAmplitude(amplitude float64) {
	w.amp.Store(utils.Clamp32(float32(amplitude), 0, 1))
}

// Rewind restarts the waveform from the beginning, so the generator can
// be looped.
func (w *Waveform) Rewind() error {
	w.phase = 0
	w.pos = 0
	return nil
}

// ReadSamples fills dst with mono samples in [-1, 1].
func (w *Waveform) ReadSamples(dst []float32) (int, error) {
	if w.total >= 0 && w.pos >= w.total {
		return 0, io.EOF
	}

	n := len(dst)
	if w.total >= 0 && w.total-w.pos < n {
		n = w.total - w.pos
	}

	freq := float64(w.freq.Load())
	amp := w.amp.Load()
	step := freq / float64(w.sampleRate)

	for i := 0; i < n; i++ {
		dst[i] = amp * sample(w.shape, w.phase)
		w.phase += step
		if w.phase >= 1 {
			w.phase -= math.Floor(w.phase)
		}
	}
	w.pos += n

	if w.total >= 0 && w.pos >= w.total {
		return n, io.EOF
	}
	return n, nil
}

// sample evaluates one cycle of the shape at phase in [0, 1), returning
// a value in [-1, 1].
func sample(shape Shape, phase float64) float32 {
	switch shape {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return float32(1 - 4*math.Abs(phase-0.5))
	case Sawtooth:
		return float32(2*phase - 1)
	default: // Sine
		return float32(math.Sin(2 * math.Pi * phase))
	}
}
