// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// The package wraps github.com/hajimehoshi/go-mp3 and exposes decoded
// audio as an audio.Source of float32 samples in [-1.0, 1.0]. Output is
// always stereo at the file's native sample rate; feed it through
// audio.NewMonoMixer when a mono stream is needed, for example before
// panning:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // not an MP3 stream
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// MP3 writing is not supported.
package mp3
