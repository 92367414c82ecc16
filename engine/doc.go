// SPDX-License-Identifier: EPL-2.0

// Package engine provides sound playback management on top of the node
// graph.
//
// An Engine owns a graph.Graph and a set of named Sounds. Each sound is
// a chain of its own nodes: a source node pulling from an audio.Source
// (downmixed to mono when needed), feeding a panner, feeding the
// graph's stereo endpoint.
//
//	e, _ := engine.New(44100)
//	tone, _ := waveform.New(waveform.Sine, 44100, 440, 0.8)
//	snd, _ := engine.NewSound(e, tone, "beep")
//	snd.SetPan(-0.5)
//	snd.Start()
//
//	buf := make([]float32, 512*2)
//	e.ReadFrames(buf) // interleaved stereo
//
// The engine opens no audio device: the caller of ReadFrames is the
// render thread. Feed the frames to a playback device callback or
// collect them for offline rendering; the engine behaves identically.
//
// Control calls (Start, Stop, SetPan, SetVolume, SetLooping, master
// volume) are safe from any thread while rendering runs. Teardown is
// not: Close a sound or the engine only after the render thread has
// been quiesced.
//
// The engine performs no sample rate conversion; a source whose rate
// differs from the engine's is rejected with ErrSampleRateMismatch.
package engine
