// Package effects is the master bus applied after the engine: a small chain
// of stereo processors run on the audio thread.
package effects

// Effector processes one stereo frame.
type Effector interface {
	Process(l, r float32) (float32, float32)
	Reset()
}

// Chain applies a sequence of effects in order. A nil Chain passes audio
// through untouched.
type Chain struct {
	effects []Effector
}

func NewChain(effects ...Effector) *Chain {
	return &Chain{effects: effects}
}

func (c *Chain) Process(l, r float32) (float32, float32) {
	if c == nil {
		return l, r
	}
	for _, e := range c.effects {
		l, r = e.Process(l, r)
	}
	return l, r
}

// ProcessInterleaved runs the chain over an interleaved stereo buffer.
func (c *Chain) ProcessInterleaved(buf []float32) {
	if c == nil || len(c.effects) == 0 {
		return
	}
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = c.Process(buf[i], buf[i+1])
	}
}

func (c *Chain) Reset() {
	if c == nil {
		return
	}
	for _, e := range c.effects {
		e.Reset()
	}
}

func (c *Chain) Add(e Effector) {
	if e == nil {
		return
	}
	c.effects = append(c.effects, e)
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.effects)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ring is a fixed-length circular delay line.
type ring struct {
	buf []float32
	pos int
}

func newRing(n int) ring {
	if n < 1 {
		n = 1
	}
	return ring{buf: make([]float32, n)}
}

// push stores in and returns the value written len(buf) frames ago.
func (r *ring) push(in float32) float32 {
	out := r.buf[r.pos]
	r.buf[r.pos] = in
	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
	}
	return out
}

func (r *ring) peek() float32 { return r.buf[r.pos] }

func (r *ring) reset() {
	clear(r.buf)
	r.pos = 0
}
