// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav for robust chunk handling;
// encoding writes canonical 44-byte-header PCM files directly.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Seekable inputs are streamed; a
// plain io.Reader is buffered into memory first, since the underlying
// decoder needs to seek between chunks.
//
// # Writing WAV Files
//
// Use WritePCM16 to create WAV files; samples are interleaved when the
// channel count is above one:
//
//	stereo := []int16{100, 100, -100, -100} // L R L R
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, 44100, 2, stereo)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: Compressed WAV variants are rejected
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//   - ErrInvalidChannelCount, ErrInvalidSampleCount: bad WritePCM16 input
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
package wav
