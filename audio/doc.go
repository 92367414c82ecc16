// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio building blocks:
//   - Source interface for audio input
//   - Rewinder interface for loopable sources
//   - MonoMixer for channel mixing
//   - AtomicFloat32 for lock-free parameter control
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Rewinding
//
// Sources that can seek back to the start additionally implement
// Rewinder:
//
//	type Rewinder interface {
//	    Rewind() error
//	}
//
// Looping playback needs it; in-memory and generated sources typically
// qualify, streaming decoders typically do not. A processor wrapping a
// source (such as MonoMixer) forwards Rewind to the wrapped source and
// reports ErrNotRewindable when it cannot.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Mono audio is what feeds a stereo panner, so multi-channel material
// is downmixed before panning.
//
// # Atomic Parameters
//
// AtomicFloat32 carries a single float32 between a control thread and
// the audio render thread without locks:
//
//	var pan audio.AtomicFloat32
//	pan.Store(-0.5) // any thread
//	v := pan.Load() // render thread, wait-free
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
