package effects

// Reverb is a Schroeder comb/allpass reverb. The right bank runs slightly
// longer lines than the left for width.
type Reverb struct {
	left, right bank
	wet         float32
}

type bank struct {
	combs   [4]ring
	allpass [2]ring
	fb      float32
}

// comb and allpass line lengths as ratios of the base length
var (
	combRatios    = [4]int{1000, 1117, 1271, 1437}
	allpassRatios = [2]int{347, 213}
)

const stereoSpread = 23

// NewReverb creates a reverb. room (0..1) scales the line lengths, feedback
// (0..0.95) sets the decay and wet is the wet/dry mix.
func NewReverb(sampleRate int, room, feedback, wet float32) *Reverb {
	base := int(float32(sampleRate) * clamp(room, 0, 1) * 0.05)
	if base < 10 {
		base = 10
	}
	fb := clamp(feedback, 0, 0.95)
	return &Reverb{
		left:  newBank(base, fb),
		right: newBank(base+stereoSpread, fb),
		wet:   clamp(wet, 0, 1),
	}
}

func newBank(base int, fb float32) bank {
	var b bank
	b.fb = fb
	for i, ratio := range combRatios {
		b.combs[i] = newRing(base * ratio / 1000)
	}
	for i, ratio := range allpassRatios {
		b.allpass[i] = newRing(base * ratio / 1000)
	}
	return b
}

func (b *bank) process(in float32) float32 {
	var out float32
	for i := range b.combs {
		c := &b.combs[i]
		d := c.peek()
		c.push(in + d*b.fb)
		out += d
	}
	out *= 0.25
	for i := range b.allpass {
		a := &b.allpass[i]
		d := a.peek()
		a.push(out + d*0.5)
		out = d - out
	}
	return out
}

func (b *bank) reset() {
	for i := range b.combs {
		b.combs[i].reset()
	}
	for i := range b.allpass {
		b.allpass[i].reset()
	}
}

func (r *Reverb) Process(l, rt float32) (float32, float32) {
	mono := (l + rt) * 0.5
	wl := r.left.process(mono)
	wr := r.right.process(mono)
	dry := 1 - r.wet
	return l*dry + wl*r.wet, rt*dry + wr*r.wet
}

func (r *Reverb) Reset() {
	r.left.reset()
	r.right.reset()
}
