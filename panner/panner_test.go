// SPDX-License-Identifier: EPL-2.0

package panner

import (
	"math"
	"sync"
	"testing"

	"github.com/ik5/pangraph/graph"
)

func newTestNode(t *testing.T, initialPan float32) *Node {
	t.Helper()

	g, err := graph.New(44100)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	n, err := Init(g, initialPan)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	return n
}

// process runs one block of all-ones mono input through the node and
// returns the interleaved stereo output.
func process(n *Node, frames int) []float32 {
	in := make([]float32, frames)
	for i := range in {
		in[i] = 1
	}
	out := make([]float32, frames*2)

	n.ProcessFrames([][]float32{in}, [][]float32{out}, frames)

	return out
}

func TestInit_NilGraph(t *testing.T) {
	t.Parallel()

	if _, err := Init(nil, 0); err != ErrNilGraph {
		t.Errorf("Init(nil, 0) error = %v, want ErrNilGraph", err)
	}
}

func TestInit_ClampsInitialPan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		initial float32
		want    float32
	}{
		{"above range", 2.5, 1},
		{"below range", -7, -1},
		{"in range", 0.25, 0.25},
		{"left boundary", -1, -1},
		{"right boundary", 1, 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := newTestNode(t, tc.initial)

			if got := n.Pan(); got != tc.want {
				t.Errorf("Pan() = %v, want %v", got, tc.want)
			}
			if n.currentPan != tc.want {
				t.Errorf("currentPan = %v, want %v", n.currentPan, tc.want)
			}
			if n.remaining != 0 {
				t.Errorf("remaining = %d, want 0 (node must start at rest)", n.remaining)
			}
		})
	}
}

func TestSetPan_Clamps(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)

	n.SetPan(42)
	if got := n.Pan(); got != 1 {
		t.Errorf("Pan() after SetPan(42) = %v, want 1", got)
	}

	n.SetPan(-42)
	if got := n.Pan(); got != -1 {
		t.Errorf("Pan() after SetPan(-42) = %v, want -1", got)
	}
}

func TestPan_ReturnsTargetNotRendered(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)
	n.SetPan(1)

	// Nothing processed yet: the target moved, the rendered pan did not
	if got := n.Pan(); got != 1 {
		t.Errorf("Pan() = %v, want 1", got)
	}
	if n.currentPan != 0 {
		t.Errorf("currentPan = %v, want 0", n.currentPan)
	}
}

func TestProcessFrames_ZeroFramesIsNoOp(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0.5)
	n.SetPan(-0.5)

	n.ProcessFrames(nil, nil, 0)

	if n.currentPan != 0.5 || n.remaining != 0 || n.lastTarget != 0.5 {
		t.Errorf("zero-frame block changed state: current=%v remaining=%d lastTarget=%v",
			n.currentPan, n.remaining, n.lastTarget)
	}
}

func TestProcessFrames_CenterIsEqualPower(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)
	out := process(n, 256)

	want := math.Sqrt2 / 2
	for i := 0; i < 256; i++ {
		l := float64(out[2*i])
		r := float64(out[2*i+1])

		if math.Abs(l-want) > 1e-6 || math.Abs(r-want) > 1e-6 {
			t.Fatalf("frame %d: (%v, %v), want both ≈%v", i, l, r, want)
		}
	}
}

func TestRamp_ConvergesAndSnaps(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)
	n.SetPan(1)

	out := process(n, SmoothingWindow)

	// Exactly at the target after one full window, not merely close
	if n.currentPan != 1 {
		t.Errorf("currentPan after %d samples = %v, want exactly 1", SmoothingWindow, n.currentPan)
	}
	if n.remaining != 0 {
		t.Errorf("remaining = %d, want 0", n.remaining)
	}

	// Right channel rises monotonically, left falls, power stays 1
	prevL, prevR := float64(out[0]), float64(out[1])
	for i := 1; i < SmoothingWindow; i++ {
		l := float64(out[2*i])
		r := float64(out[2*i+1])

		if r < prevR {
			t.Fatalf("right gain fell at frame %d: %v < %v", i, r, prevR)
		}
		if l > prevL {
			t.Fatalf("left gain rose at frame %d: %v > %v", i, l, prevL)
		}
		if math.Abs(l*l+r*r-1) > 1e-6 {
			t.Fatalf("power at frame %d = %v, want 1", i, l*l+r*r)
		}

		prevL, prevR = l, r
	}

	if math.Abs(prevL) > 1e-4 {
		t.Errorf("final left gain = %v, want ≈0", prevL)
	}
	if math.Abs(prevR-1) > 1e-4 {
		t.Errorf("final right gain = %v, want ≈1", prevR)
	}
}

func TestRamp_SpansBlocks(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, -1)
	n.SetPan(1)

	// The window is independent of block size
	process(n, 100)
	if n.remaining != SmoothingWindow-100 {
		t.Fatalf("remaining after 100 frames = %d, want %d", n.remaining, SmoothingWindow-100)
	}

	process(n, 100)
	process(n, 100)

	if n.currentPan != 1 || n.remaining != 0 {
		t.Errorf("after %d frames: currentPan = %v remaining = %d, want 1 and 0",
			300, n.currentPan, n.remaining)
	}
}

func TestRamp_DefersNewTargetUntilDone(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)
	n.SetPan(1)

	// Start ramping toward 1
	process(n, 100)
	if n.lastTarget != 1 {
		t.Fatalf("lastTarget = %v, want 1", n.lastTarget)
	}

	// A mid-ramp change must not be adopted yet
	n.SetPan(-1)
	process(n, 100)
	if n.lastTarget != 1 {
		t.Fatalf("mid-ramp target adopted early: lastTarget = %v, want 1", n.lastTarget)
	}

	// Ramp runs to completion at the original target first
	process(n, SmoothingWindow - 200)
	if n.currentPan != 1 {
		t.Fatalf("currentPan = %v, want 1 (first ramp must complete)", n.currentPan)
	}

	// The deferred change is picked up on the next block
	process(n, SmoothingWindow)
	if n.lastTarget != -1 {
		t.Errorf("lastTarget = %v, want -1", n.lastTarget)
	}
	if n.currentPan != -1 {
		t.Errorf("currentPan = %v, want -1", n.currentPan)
	}
}

func TestSetPan_IdempotentAfterConvergence(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)
	n.SetPan(0.5)
	process(n, SmoothingWindow)

	if n.currentPan != 0.5 {
		t.Fatalf("currentPan = %v, want 0.5", n.currentPan)
	}

	// Repeating the same target must not re-trigger a ramp
	for ri := 0; ri < 5; ri++ {
		n.SetPan(0.5)
		process(n, 64)

		if n.remaining != 0 {
			t.Fatalf("remaining = %d, want 0 (ramp re-triggered)", n.remaining)
		}
		if n.currentPan != 0.5 {
			t.Fatalf("currentPan = %v, want 0.5", n.currentPan)
		}
	}
}

func TestAtRest_Invariant(t *testing.T) {
	t.Parallel()

	// Whenever the ramp is at rest, the rendered pan equals the target
	// it last ramped to
	n := newTestNode(t, 0.3)

	for _, target := range []float32{-0.7, 0.1, 1, -1, 0} {
		n.SetPan(target)
		process(n, SmoothingWindow)
		process(n, 16)

		if n.remaining != 0 {
			t.Fatalf("remaining = %d, want 0", n.remaining)
		}
		if n.currentPan != n.lastTarget {
			t.Fatalf("at rest but currentPan (%v) != lastTarget (%v)", n.currentPan, n.lastTarget)
		}
	}
}

func TestUninit_NilSafe(t *testing.T) {
	t.Parallel()

	var n *Node
	n.Uninit() // must not panic
}

func TestUninit_Detaches(t *testing.T) {
	t.Parallel()

	g, err := graph.New(44100)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	n, err := Init(g, 0)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := g.AttachToEndpoint(n, 0); err != nil {
		t.Fatalf("AttachToEndpoint() error = %v", err)
	}

	n.Uninit()

	// The node is gone from the graph; re-registering it must work
	if err := g.AddNode(n); err != nil {
		t.Errorf("AddNode() after Uninit() error = %v", err)
	}
}

func TestSetPan_ConcurrentWithRender(t *testing.T) {
	t.Parallel()

	n := newTestNode(t, 0)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Control threads hammering the target
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()

			v := float32(seed) * 0.1
			for {
				select {
				case <-stop:
					return
				default:
					n.SetPan(v)
					n.SetPan(-v)
					n.Pan()
				}
			}
		}(w)
	}

	// Render thread
	for ri := 0; ri < 200; ri++ {
		out := process(n, 128)

		// Output gains must always come from a clamped pan
		for i := 0; i < 128; i++ {
			l := float64(out[2*i])
			r := float64(out[2*i+1])

			if l < -1e-6 || r < -1e-6 || math.Abs(l*l+r*r-1) > 1e-5 {
				t.Fatalf("invalid gains under concurrency: (%v, %v)", l, r)
			}
		}
	}

	close(stop)
	wg.Wait()

	// The node converges once the dust settles. Two blocks: the first
	// finishes any in-flight ramp, the second adopts and completes ours.
	n.SetPan(0.25)
	process(n, SmoothingWindow)
	process(n, SmoothingWindow)

	if n.currentPan != 0.25 {
		t.Errorf("currentPan = %v, want 0.25", n.currentPan)
	}
}

func TestEndToEnd_GraphRender(t *testing.T) {
	t.Parallel()

	g, err := graph.New(44100)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	src := &onesNode{}
	if err := g.AddNode(src); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}

	n, err := Init(g, 0)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := g.Attach(src, 0, n, 0); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := g.AttachToEndpoint(n, 0); err != nil {
		t.Fatalf("AttachToEndpoint() error = %v", err)
	}

	// Block 1: centered, both channels flat at √2/2
	buf := make([]float32, 256*2)
	if got := g.ReadFrames(buf); got != 256 {
		t.Fatalf("ReadFrames() = %d, want 256", got)
	}

	want := math.Sqrt2 / 2
	for i := 0; i < 256; i++ {
		if math.Abs(float64(buf[2*i])-want) > 1e-6 || math.Abs(float64(buf[2*i+1])-want) > 1e-6 {
			t.Fatalf("center frame %d = (%v, %v), want ≈%v", i, buf[2*i], buf[2*i+1], want)
		}
	}

	// Block 2: pan hard right, the block ramps there smoothly
	n.SetPan(1)
	if got := g.ReadFrames(buf); got != 256 {
		t.Fatalf("ReadFrames() = %d, want 256", got)
	}

	prevL, prevR := float64(buf[0]), float64(buf[1])
	for i := 1; i < 256; i++ {
		l := float64(buf[2*i])
		r := float64(buf[2*i+1])

		if l > prevL || r < prevR {
			t.Fatalf("ramp not monotonic at frame %d", i)
		}
		if math.Abs(l*l+r*r-1) > 1e-6 {
			t.Fatalf("power at frame %d = %v, want 1", i, l*l+r*r)
		}

		prevL, prevR = l, r
	}

	if math.Abs(prevL) > 1e-4 || math.Abs(prevR-1) > 1e-4 {
		t.Errorf("end of ramp = (%v, %v), want (≈0, ≈1)", prevL, prevR)
	}
}

// onesNode is a minimal mono source emitting constant full-scale
// samples.
type onesNode struct {
	graph.Base
}

func (*onesNode) Info() graph.Info {
	return graph.Info{OutputChannels: []int{1}}
}

func (*onesNode) ProcessFrames(in, out [][]float32, frames int) {
	for i := 0; i < frames; i++ {
		out[0][i] = 1
	}
}

func BenchmarkProcessFrames(b *testing.B) {
	g, err := graph.New(44100)
	if err != nil {
		b.Fatalf("graph.New() error = %v", err)
	}
	n, err := Init(g, 0)
	if err != nil {
		b.Fatalf("Init() error = %v", err)
	}

	in := make([]float32, 512)
	for i := range in {
		in[i] = 0.5
	}
	out := make([]float32, 512*2)
	ins := [][]float32{in}
	outs := [][]float32{out}

	b.ResetTimer()
	b.ReportAllocs()

	for bi := 0; bi < b.N; bi++ {
		n.SetPan(1)
		n.ProcessFrames(ins, outs, 512)
		n.SetPan(-1)
		n.ProcessFrames(ins, outs, 512)
	}
}

// BenchmarkProcessFrames_ZeroAllocs verifies the render path does not
// allocate.
func BenchmarkProcessFrames_ZeroAllocs(b *testing.B) {
	g, err := graph.New(44100)
	if err != nil {
		b.Fatalf("graph.New() error = %v", err)
	}
	n, err := Init(g, 0)
	if err != nil {
		b.Fatalf("Init() error = %v", err)
	}

	in := make([]float32, 512)
	out := make([]float32, 512*2)
	ins := [][]float32{in}
	outs := [][]float32{out}

	allocs := testing.AllocsPerRun(100, func() {
		n.SetPan(0.5)
		n.ProcessFrames(ins, outs, 512)
		n.SetPan(-0.5)
		n.ProcessFrames(ins, outs, 512)
	})

	if allocs > 0 {
		b.Errorf("ProcessFrames() allocated %v times, want 0", allocs)
	}
}
