// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// The package wraps github.com/go-audio/aiff and exposes decoded audio
// as an audio.Source of float32 samples in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // not an AIFF file
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Seekable inputs are streamed; a plain io.Reader is buffered into
// memory first, since the underlying decoder needs to seek between
// chunks.
//
// Only 16-bit PCM AIFF is supported; AIFF-C compression and other bit
// depths are rejected with ErrOnlyPCM16bitSupported. AIFF writing is
// not supported.
package aiff
