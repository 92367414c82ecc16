// SPDX-License-Identifier: EPL-2.0

// Package waveform generates mono test tones as audio.Source streams.
//
// Four shapes are supported: Sine, Square, Triangle and Sawtooth. A
// generator is either endless or limited to a fixed duration:
//
//	tone, err := waveform.New(waveform.Sine, 44100, 440, 0.8)
//	beep, err := waveform.NewFinite(waveform.Square, 44100, 880, 0.5, 0.25)
//
// Frequency and amplitude can be changed from any thread while audio is
// being pulled; the generator keeps its phase, so the transition does
// not click. Generators rewind, which makes them loopable.
package waveform
