// SPDX-License-Identifier: EPL-2.0

package graph

import "sync"

// EndpointChannels is the channel count of the graph's output endpoint.
// Rendering always produces interleaved stereo.
const EndpointChannels = 2

// Graph wires Nodes together and pulls audio through them.
//
// Rendering is pull-based: ReadFrames asks the endpoint for a block,
// the endpoint asks the nodes attached to it, and so on upstream. Every
// node is processed at most once per block, so a node feeding several
// inputs produces one consistent output.
//
// Topology changes (AddNode, Attach, RemoveNode) may come from any
// thread; a mutex guards them. ReadFrames is meant to be called by a
// single render thread. Destroying a node while the render thread may
// still reach it is the caller's problem: quiesce rendering first.
type Graph struct {
	sampleRate int

	mu    sync.Mutex
	nodes []*nodeBase
	end   *endpoint
	seq   uint64
}

// endpoint is the terminal node of every graph: one stereo input bus
// that sums everything attached to it, passed through to one stereo
// output bus that ReadFrames drains.
type endpoint struct {
	Base
}

func (e *endpoint) Info() Info {
	return Info{
		InputChannels:  []int{EndpointChannels},
		OutputChannels: []int{EndpointChannels},
	}
}

func (e *endpoint) ProcessFrames(in, out [][]float32, frames int) {
	copy(out[0][:frames*EndpointChannels], in[0][:frames*EndpointChannels])
}

// New creates an empty graph rendering at sampleRate Hz.
func New(sampleRate int) (*Graph, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	g := &Graph{sampleRate: sampleRate}
	g.end = &endpoint{}

	if err := g.AddNode(g.end); err != nil {
		return nil, err
	}

	return g, nil
}

// SampleRate returns the rate the graph renders at, in Hz.
func (g *Graph) SampleRate() int { return g.sampleRate }

// AddNode registers n with the graph. The node starts detached; wire it
// with Attach or AttachToEndpoint. A node belongs to at most one graph
// at a time.
func (g *Graph) AddNode(n Node) error {
	if n == nil {
		return ErrNilNode
	}

	info := n.Info()
	if len(info.InputChannels)+len(info.OutputChannels) == 0 {
		return ErrBusLayout
	}
	for _, ch := range info.InputChannels {
		if ch <= 0 {
			return ErrBusLayout
		}
	}
	for _, ch := range info.OutputChannels {
		if ch <= 0 {
			return ErrBusLayout
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nb := n.base()
	if nb.attached() {
		return ErrNodeAlreadyAdded
	}

	nb.g = g
	nb.self = n
	nb.info = info
	nb.inputs = make([][]attachment, len(info.InputChannels))
	nb.inBufs = make([][]float32, len(info.InputChannels))
	nb.outBufs = make([][]float32, len(info.OutputChannels))

	g.nodes = append(g.nodes, nb)

	return nil
}

// RemoveNode detaches n from everything it feeds and unregisters it.
// Removing a nil node or a node that was never added is a no-op.
func (g *Graph) RemoveNode(n Node) {
	if n == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nb := n.base()
	if nb.g != g {
		return
	}

	// Drop every attachment that has nb as its upstream.
	for _, other := range g.nodes {
		for bus, atts := range other.inputs {
			kept := atts[:0]
			for _, a := range atts {
				if a.src != nb {
					kept = append(kept, a)
				}
			}
			other.inputs[bus] = kept
		}
	}

	for i, b := range g.nodes {
		if b == nb {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}

	nb.g = nil
	nb.self = nil
	nb.inputs = nil
	nb.inBufs = nil
	nb.outBufs = nil
}

// Attach routes output bus outBus of src into input bus inBus of dst.
// An output bus feeds at most one input bus; attaching it again moves
// it. Several output buses may feed the same input bus, in which case
// they are summed. Channel counts must match, except that mono output
// may feed a stereo input (duplicated) and stereo output may feed a
// mono input (averaged).
func (g *Graph) Attach(src Node, outBus int, dst Node, inBus int) error {
	if src == nil || dst == nil {
		return ErrNilNode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	sb, db := src.base(), dst.base()
	if sb.g != g || db.g != g {
		return ErrNodeNotInGraph
	}
	if outBus < 0 || outBus >= len(sb.info.OutputChannels) {
		return ErrInvalidBus
	}
	if inBus < 0 || inBus >= len(db.info.InputChannels) {
		return ErrInvalidBus
	}

	srcCh := sb.info.OutputChannels[outBus]
	dstCh := db.info.InputChannels[inBus]
	if !channelsCompatible(srcCh, dstCh) {
		return ErrChannelMismatch
	}

	g.detachOutputLocked(sb, outBus)
	db.inputs[inBus] = append(db.inputs[inBus], attachment{src: sb, outBus: outBus})

	return nil
}

// AttachToEndpoint routes output bus outBus of src into the graph's
// stereo endpoint.
func (g *Graph) AttachToEndpoint(src Node, outBus int) error {
	return g.Attach(src, outBus, g.end, 0)
}

// channelsCompatible reports whether a srcCh-channel output may feed a
// dstCh-channel input. Only exact matches and mono<->stereo adaptation
// are supported.
func channelsCompatible(srcCh, dstCh int) bool {
	if srcCh == dstCh {
		return true
	}
	return (srcCh == 1 && dstCh == 2) || (srcCh == 2 && dstCh == 1)
}

// detachOutputLocked removes any existing attachment of sb's outBus.
func (g *Graph) detachOutputLocked(sb *nodeBase, outBus int) {
	for _, other := range g.nodes {
		for bus, atts := range other.inputs {
			kept := atts[:0]
			for _, a := range atts {
				if a.src != sb || a.outBus != outBus {
					kept = append(kept, a)
				}
			}
			other.inputs[bus] = kept
		}
	}
}

// ReadFrames renders the next len(dst)/2 frames of interleaved stereo
// into dst and returns the frame count. A short or empty dst renders
// nothing. ReadFrames never fails; unattached inputs read silence.
func (g *Graph) ReadFrames(dst []float32) int {
	frames := len(dst) / EndpointChannels
	if frames == 0 {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	g.pullLocked(&g.end.nb, frames)
	copy(dst[:frames*EndpointChannels], g.end.nb.outBufs[0])

	return frames
}

// pullLocked processes nb for one block of frames, first pulling every
// node attached to its inputs. seq breaks cycles: a node is processed
// once per block, and a cyclic edge reads the previous block's output.
func (g *Graph) pullLocked(nb *nodeBase, frames int) {
	if nb.seq == g.seq {
		return
	}
	nb.seq = g.seq

	for bus := range nb.inputs {
		buf := ensureSamples(&nb.inBufs[bus], frames*nb.info.InputChannels[bus])
		clear(buf)

		for _, a := range nb.inputs[bus] {
			g.pullLocked(a.src, frames)
			mixInto(buf, nb.info.InputChannels[bus], a.src.outBufs[a.outBus], a.src.info.OutputChannels[a.outBus], frames)
		}
	}
	for bus := range nb.outBufs {
		ensureSamples(&nb.outBufs[bus], frames*nb.info.OutputChannels[bus])
	}

	nb.self.ProcessFrames(nb.inBufs, nb.outBufs, frames)
}

// ensureSamples resizes *buf to exactly n samples, reallocating only
// when capacity is insufficient.
func ensureSamples(buf *[]float32, n int) []float32 {
	if cap(*buf) < n {
		*buf = make([]float32, n)
	}
	*buf = (*buf)[:n]
	return *buf
}

// mixInto accumulates frames frames of src (srcCh channels) into dst
// (dstCh channels), adapting mono<->stereo as needed. Attach has
// already rejected any other combination.
func mixInto(dst []float32, dstCh int, src []float32, srcCh int, frames int) {
	switch {
	case srcCh == dstCh:
		for i := 0; i < frames*srcCh; i++ {
			dst[i] += src[i]
		}
	case srcCh == 1 && dstCh == 2:
		for i := 0; i < frames; i++ {
			dst[2*i] += src[i]
			dst[2*i+1] += src[i]
		}
	case srcCh == 2 && dstCh == 1:
		for i := 0; i < frames; i++ {
			dst[i] += (src[2*i] + src[2*i+1]) * 0.5
		}
	}
}
