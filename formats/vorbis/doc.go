// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// The package wraps github.com/jfreymuth/oggvorbis, which already
// decodes to interleaved float32, so samples pass through without
// conversion:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // not an Ogg Vorbis stream
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Channel count and sample rate follow the file. Vorbis writing is not
// supported.
package vorbis
