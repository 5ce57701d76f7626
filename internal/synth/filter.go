package synth

import (
	"fmt"
	"math"

	"github.com/cbegin/poly-go/internal/rng"
)

// Filter is a 4-pole resonant low-pass ladder with a tanh-saturated last
// stage. Its state runs for the lifetime of the voice.
type Filter struct {
	cutoff    float32
	q         float32
	resonance float32
	p         float32
	k         float32
	px        float32
	s         [4]float32
	ps        [3]float32
}

func NewFilter(r *rng.Rand, sampleRate float32, p Params) Filter {
	return newFilter(sampleRate, r.Float32(p.Cutoff), r.Float32(p.Q))
}

func newFilter(sampleRate, cutoff, q float32) Filter {
	c := 2 * cutoff / sampleRate
	p := c * (1.8 - 0.8*c)
	k := 2*float32(math.Sin(float64(c)*math.Pi/2)) - 1
	t1 := (1 - p) * 1.386249
	t2 := 12 + t1*t1
	return Filter{
		cutoff:    cutoff,
		q:         q,
		resonance: q * (t2 + 6*t1) / (t2 - 6*t1),
		p:         p,
		k:         k,
	}
}

func (f *Filter) Generate(input float32) float32 {
	x := input - f.resonance*f.s[3]

	f.s[0] = (x+f.px)*f.p - f.k*f.s[0]
	f.s[1] = (f.s[0]+f.ps[0])*f.p - f.k*f.s[1]
	f.s[2] = (f.s[1]+f.ps[1])*f.p - f.k*f.s[2]
	f.s[3] = float32(math.Tanh(float64((f.s[2]+f.ps[2])*f.p - f.k*f.s[3])))

	f.px = x
	f.ps[0] = f.s[0]
	f.ps[1] = f.s[1]
	f.ps[2] = f.s[2]

	return f.s[3]
}

func (f Filter) Cutoff() float32 { return f.cutoff }
func (f Filter) Q() float32      { return f.q }

func (f Filter) String() string {
	return fmt.Sprintf("(%.2fHz, %.2f)", f.cutoff, f.q)
}
