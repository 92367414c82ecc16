// SPDX-License-Identifier: EPL-2.0

// Package pangraph provides equal-power stereo panning over a small
// audio node graph.
//
// The heart of the library is the panner node: a mono-in, stereo-out
// processor using the equal-power pan law (left = cos θ, right = sin θ
// with θ mapped from the pan position), with pan changes smoothed over
// a fixed 256-sample window so they never click, and a lock-free
// control surface so any thread can move the pan while audio renders.
//
// # Packages
//
//   - graph: the node graph that hosts processing nodes and drives
//     block rendering
//   - panner: the equal-power panning node
//   - engine: sound playback management (sources wired through panners
//     into a shared graph)
//   - waveform: mono test-tone generators (sine, square, triangle,
//     sawtooth)
//   - audio: the Source interface, mono downmixing, decoder registry
//     and the atomic float primitive
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//     returning audio.Source (WAV also encodes)
//
// # Quick Start
//
// The simplest way to pan audio is PanToStereo16:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Render it half-left as stereo 16-bit PCM
//	pcm16, rate, _ := pangraph.PanToStereo16(src, -0.5, 4096)
//
//	// Write the result
//	out, _ := os.Create("panned.wav")
//	wav.WritePCM16(out, rate, 2, pcm16)
//
// # Live Control
//
// For playback with pan moving while audio runs, use the engine:
//
//	e, _ := engine.New(44100)
//	tone, _ := waveform.New(waveform.Sine, 44100, 440, 0.8)
//	snd, _ := engine.NewSound(e, tone, "tone")
//	snd.Start()
//
//	// render thread:
//	buf := make([]float32, 512*2)
//	e.ReadFrames(buf)
//
//	// any other thread, any time:
//	snd.SetPan(0.75)
//
// The pan setter stores one atomic value and never blocks; the render
// side picks it up at the next block and glides there over the
// smoothing window.
//
// # Sample Format
//
// Audio samples are float32 in [-1.0, 1.0] throughout; int16 appears
// only at the WAV encode/decode boundary. The library performs no
// sample rate conversion: sources are rendered at their native rate
// and the engine rejects rate mismatches.
//
// See the individual subpackages for more detailed documentation.
package pangraph
