package synth

import (
	"fmt"

	"github.com/cbegin/poly-go/internal/clock"
	"github.com/cbegin/poly-go/internal/rng"
)

type State int

const (
	Off State = iota
	Attack
	Decay
	Sustain
	Release
)

func (s State) next() State {
	switch s {
	case Off:
		return Attack
	case Attack:
		return Decay
	case Decay:
		return Sustain
	case Sustain:
		return Release
	}
	return Off
}

func (s State) String() string {
	switch s {
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	}
	return "off"
}

// ADSR is a linear envelope whose segments are fractions of the note length.
type ADSR struct {
	attack  float32
	decay   float32
	sustain float32
	release float32
	value   float32
	length  float32
	delta   float32
	clock   clock.Clock
	state   State
}

func NewADSR(r *rng.Rand, p Params) ADSR {
	return ADSR{
		attack:  r.Float32(p.Attack),
		decay:   r.Float32(p.Decay),
		sustain: r.Float32(p.Sustain),
		release: r.Float32(p.Release),
	}
}

// Start restarts the envelope for a note of length samples.
func (a *ADSR) Start(length int) {
	a.state = Attack
	a.value = 0
	a.length = float32(length)

	seg := a.length * a.attack
	a.delta = 1 / span(seg)
	a.clock.Reset(int(seg))
}

// Next advances one sample. A transition recomputes the ramp and the new
// segment's first step is applied in the same call.
func (a *ADSR) Next() float32 {
	if a.clock.Tick() {
		a.state = a.state.next()
		switch a.state {
		case Decay:
			seg := a.length * a.decay
			a.delta = (a.sustain - a.value) / span(seg)
			a.clock.Reset(int(seg))
		case Sustain:
			a.delta = 0
			a.clock.Reset(int(a.length * (1 - a.attack - a.decay - a.release)))
		case Release:
			seg := a.length * a.release
			a.delta = -a.value / span(seg)
			a.clock.Reset(int(seg))
		default:
			a.state = Off
			a.delta = 0
			a.value = 0
		}
	}
	a.value += a.delta
	return a.value
}

func (a *ADSR) State() State   { return a.state }
func (a *ADSR) Value() float32 { return a.value }

func (a ADSR) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", a.attack, a.decay, a.sustain, a.release)
}

// span guards a zero-length segment so its ramp stays finite.
func span(seg float32) float32 {
	if seg <= 0 {
		return 1
	}
	return seg
}
