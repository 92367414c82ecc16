// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"sync/atomic"

	"github.com/ik5/pangraph/audio"
	"github.com/ik5/pangraph/graph"
)

// sourceNode adapts an audio.Source into a graph node with no inputs
// and one mono output. It renders silence while stopped and after the
// source runs out, and rewinds the source in place when looping.
type sourceNode struct {
	graph.Base

	src audio.Source // mono

	playing  atomic.Bool
	looping  atomic.Bool
	finished atomic.Bool
	gain     audio.AtomicFloat32
}

func newSourceNode(src audio.Source) *sourceNode {
	n := &sourceNode{src: src}
	n.gain.Store(1)
	return n
}

func (n *sourceNode) Info() graph.Info {
	return graph.Info{OutputChannels: []int{1}}
}

func (n *sourceNode) ProcessFrames(in, out [][]float32, frames int) {
	buf := out[0][:frames]

	if !n.playing.Load() || n.finished.Load() {
		clear(buf)
		return
	}

	read := 0
	rewound := false
	for read < frames {
		got, err := n.src.ReadSamples(buf[read:])
		read += got
		if got > 0 {
			rewound = false
		}

		if err == io.EOF {
			// One rewind per stretch of progress: a source that hits
			// EOF again without yielding a sample is empty, and looping
			// it would spin the render thread forever.
			if n.looping.Load() && !rewound {
				if rw, ok := n.src.(audio.Rewinder); ok && rw.Rewind() == nil {
					rewound = true
					continue
				}
			}
			n.finished.Store(true)
			n.playing.Store(false)
			break
		}
		if err != nil {
			// A failing source cannot be reported from the render
			// path; treat it as end of stream.
			n.finished.Store(true)
			n.playing.Store(false)
			break
		}
		if got == 0 {
			break
		}
	}

	clear(buf[read:])

	if g := n.gain.Load(); g != 1 {
		for i := range buf[:read] {
			buf[i] *= g
		}
	}
}
