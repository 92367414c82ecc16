// SPDX-License-Identifier: EPL-2.0

package pangraph

import (
	"fmt"
	"io"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/graph"
	"github.com/ik5/pangraph/panner"
	"github.com/ik5/pangraph/utils"
)

// pullSource adapts an audio.Source into a no-input mono graph node so
// a source can be rendered offline. It tracks how many frames of the
// current block were real audio, so trailing zero-fill after the
// source ends is not collected.
type pullSource struct {
	graph.Base

	src       audio.Source
	done      bool
	err       error
	lastValid int
}

func (p *pullSource) Info() graph.Info {
	return graph.Info{OutputChannels: []int{1}}
}

func (p *pullSource) ProcessFrames(in, out [][]float32, frames int) {
	buf := out[0][:frames]

	if p.done {
		p.lastValid = 0
		clear(buf)
		return
	}

	read := 0
	for read < frames {
		n, err := p.src.ReadSamples(buf[read:])
		read += n

		if err == io.EOF {
			p.done = true
			break
		}
		if err != nil {
			p.done = true
			p.err = err
			break
		}
		if n == 0 {
			// No progress and no EOF: the source is stalled. Treat it
			// as end of stream so the collection loop terminates.
			p.done = true
			break
		}
	}

	p.lastValid = read
	clear(buf[read:])
}

// PanToStereo16 is a high-level convenience function that renders a
// source through an equal-power panner and collects the result as
// interleaved stereo 16-bit PCM.
//
// The function builds a small offline graph:
//  1. Downmixes the source to mono when it has more than one channel
//  2. Pans it at the given position (clamped into [-1, 1]) with the
//     equal-power law
//  3. Collects the stereo output as interleaved int16 PCM
//
// The pan position is applied from the first sample; no ramp runs,
// since the panner starts at rest at its initial pan.
//
// Parameters:
//   - src: The audio source to render (implements Source interface)
//   - pan: Stereo position, -1 full left, 0 center, +1 full right
//   - bufferSize: Render block size in samples (e.g., 4096); a
//     non-positive value selects a reasonable default
//
// Returns the interleaved stereo samples, the sample rate (the
// source's own rate; no conversion is performed), and any error the
// source reported mid-stream.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, rate, err := pangraph.PanToStereo16(src, -0.5, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	wav.WritePCM16(out, rate, 2, pcm16)
func PanToStereo16(src audio.Source, pan float32, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	rate := src.SampleRate()

	mono := src
	if src.Channels() != 1 {
		mono = audio.NewMonoMixer(src)
	}

	g, err := graph.New(rate)
	if err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}

	node := &pullSource{src: mono}
	if err := g.AddNode(node); err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}

	pn, err := panner.Init(g, pan)
	if err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}
	if err := g.Attach(node, 0, pn, 0); err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}
	if err := g.AttachToEndpoint(pn, 0); err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}

	frames := bufferSize / graph.EndpointChannels
	if frames == 0 {
		frames = 1
	}
	buf := make([]float32, frames*graph.EndpointChannels)
	pcm16 := make([]int16, 0, frames*graph.EndpointChannels)

	for !node.done {
		g.ReadFrames(buf)

		valid := frames
		if node.done {
			valid = node.lastValid
		}
		for i := 0; i < valid*graph.EndpointChannels; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}
	}

	if node.err != nil {
		return pcm16, rate, fmt.Errorf("%w", node.err)
	}

	return pcm16, rate, nil
}
