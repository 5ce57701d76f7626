package synth

import (
	"errors"
	"fmt"

	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/signal"
)

// OperatorSpec is one entry of the modulator pool: a waveform and the range
// its frequency ratio is drawn from.
type OperatorSpec struct {
	Signal signal.Signal    `json:"signal"`
	Ratio  rng.Float32Range `json:"ratio"`
}

// Params holds the ranges every random draw of the synth is taken from.
// Attack, Decay, Sustain and Release are fractions of the note length
// (Sustain is a level). Cutoff is in Hz, Mutate in samples.
type Params struct {
	Operators []OperatorSpec   `json:"operators"`
	Attack    rng.Float32Range `json:"attack"`
	Decay     rng.Float32Range `json:"decay"`
	Sustain   rng.Float32Range `json:"sustain"`
	Release   rng.Float32Range `json:"release"`
	Cutoff    rng.Float32Range `json:"cutoff"`
	Q         rng.Float32Range `json:"q"`
	Mutate    rng.IntRange     `json:"mutate"`
}

func DefaultParams() Params {
	return Params{
		Operators: []OperatorSpec{
			{Signal: signal.Square, Ratio: rng.Float32Range{Min: 1.0, Max: 1.0}},
			{Signal: signal.Saw, Ratio: rng.Float32Range{Min: 1.0, Max: 1.0}},
			{Signal: signal.Square, Ratio: rng.Float32Range{Min: 2.0, Max: 4.0}},
			{Signal: signal.Sine, Ratio: rng.Float32Range{Min: 0.2, Max: 0.4}},
			{Signal: signal.Square, Ratio: rng.Float32Range{Min: 0.2, Max: 0.4}},
		},
		Attack:  rng.Float32Range{Min: 0.01, Max: 0.6},
		Decay:   rng.Float32Range{Min: 0.01, Max: 0.1},
		Sustain: rng.Float32Range{Min: 0.4, Max: 0.95},
		Release: rng.Float32Range{Min: 0.01, Max: 0.05},
		Cutoff:  rng.Float32Range{Min: 400, Max: 600},
		Q:       rng.Float32Range{Min: 0.2, Max: 0.5},
		Mutate:  rng.IntRange{Min: 2_205_000, Max: 4_410_000},
	}
}

// Validate reports the first range that cannot produce a usable voice.
func (p Params) Validate() error {
	if len(p.Operators) == 0 {
		return fmt.Errorf("synth: operator pool: %w", rng.ErrEmpty)
	}
	for i, op := range p.Operators {
		if !op.Ratio.Valid() || op.Ratio.Min <= 0 {
			return fmt.Errorf("synth: operator %d ratio %v is invalid", i, op.Ratio)
		}
	}
	fractions := []struct {
		name string
		r    rng.Float32Range
	}{
		{"attack", p.Attack},
		{"decay", p.Decay},
		{"sustain", p.Sustain},
		{"release", p.Release},
		{"q", p.Q},
	}
	for _, f := range fractions {
		if !f.r.Valid() || f.r.Min < 0 || f.r.Max > 1 {
			return fmt.Errorf("synth: %s range %v must lie within 0..1", f.name, f.r)
		}
	}
	if p.Attack.Max+p.Decay.Max+p.Release.Max > 1 {
		return errors.New("synth: attack+decay+release may exceed the note length")
	}
	if !p.Cutoff.Valid() || p.Cutoff.Min <= 0 {
		return fmt.Errorf("synth: cutoff range %v is invalid", p.Cutoff)
	}
	if !p.Mutate.Valid() || p.Mutate.Min < 0 {
		return fmt.Errorf("synth: mutate range %v is invalid", p.Mutate)
	}
	return nil
}
