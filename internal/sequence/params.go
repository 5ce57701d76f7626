package sequence

import (
	"fmt"
	"slices"

	"github.com/cbegin/poly-go/internal/rng"
)

// Capacity is the number of note slots in a sequence.
const Capacity = 8

// Params holds the ranges a sequence is drawn from. Tempo is in beats per
// minute, Mutate in samples.
type Params struct {
	Tempo  rng.Float32Range `json:"tempo"`
	Mutate rng.IntRange     `json:"mutate"`
	Metres []int            `json:"metres"`
	Scales []Scale          `json:"scales,omitempty"`
}

func DefaultParams() Params {
	return Params{
		Tempo:  rng.Float32Range{Min: 80, Max: 120},
		Mutate: rng.IntRange{Min: 441_000, Max: 882_000},
		Metres: []int{3, 4, 5, 7, 8},
		Scales: slices.Clone(Scales[:]),
	}
}

func (p Params) Validate() error {
	if !p.Tempo.Valid() || p.Tempo.Min <= 0 {
		return fmt.Errorf("sequence: tempo range %v is invalid", p.Tempo)
	}
	if !p.Mutate.Valid() || p.Mutate.Min < 0 {
		return fmt.Errorf("sequence: mutate range %v is invalid", p.Mutate)
	}
	if len(p.Metres) == 0 {
		return fmt.Errorf("sequence: metre set: %w", rng.ErrEmpty)
	}
	for _, m := range p.Metres {
		if m < 2 || m > Capacity {
			return fmt.Errorf("sequence: metre %d outside 2..%d", m, Capacity)
		}
	}
	if len(p.Scales) == 0 {
		return fmt.Errorf("sequence: scale list: %w", rng.ErrEmpty)
	}
	for i, sc := range p.Scales {
		for _, f := range sc {
			if !(f > 0) {
				return fmt.Errorf("sequence: scale %d has non-positive frequency %v", i, f)
			}
		}
	}
	return nil
}
