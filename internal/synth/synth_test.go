package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/cbegin/poly-go/internal/clock"
	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/signal"
)

func TestNewSynthCarrierIsFixedSine(t *testing.T) {
	s, err := New(rng.New(1), 44100, DefaultParams(), nil)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	carrier := s.Operator(0)
	if carrier.Signal() != signal.Sine || carrier.Ratio() != 1 {
		t.Fatalf("carrier = %v, want (Sine, 1)", carrier)
	}
	if s.Envelope().State() != Off {
		t.Fatalf("envelope state = %v, want off", s.Envelope().State())
	}
}

func TestNewSynthEmptyPoolFails(t *testing.T) {
	p := DefaultParams()
	p.Operators = nil
	if _, err := New(rng.New(1), 44100, p, nil); !errors.Is(err, rng.ErrEmpty) {
		t.Fatalf("err = %v, want rng.ErrEmpty", err)
	}
}

func TestSynthSilentUntilPlayed(t *testing.T) {
	s, err := New(rng.New(2), 44100, DefaultParams(), nil)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if v := s.Next(); v != 0 {
			t.Fatalf("sample %d = %f before any note", i, v)
		}
	}
}

func TestSynthPlayGeneratesSignal(t *testing.T) {
	for seed := uint64(0); seed < 8; seed++ {
		s, err := New(rng.New(seed), 44100, DefaultParams(), nil)
		if err != nil {
			t.Fatalf("new synth: %v", err)
		}
		r := rng.New(seed + 100)
		s.Play(r, 22050, 440)
		var maxAbs float64
		for i := 0; i < 22050; i++ {
			v := float64(s.Next())
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Fatalf("seed %d sample %d = %f", seed, i, v)
			}
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs < 1e-4 {
			t.Errorf("seed %d: expected audible output, peak %f", seed, maxAbs)
		}
	}
}

func TestSynthPlaySetsOperatorFrequencies(t *testing.T) {
	s, err := New(rng.New(3), 44100, DefaultParams(), nil)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	s.Play(rng.New(4), 1000, 300)
	for i := 0; i < Operators; i++ {
		op := s.Operator(i)
		if math.Abs(float64(op.Frequency()-300*op.Ratio())) > 1e-3 {
			t.Errorf("operator %d frequency = %f, want %f", i, op.Frequency(), 300*op.Ratio())
		}
	}
	if s.Envelope().State() != Attack {
		t.Fatalf("envelope state = %v, want attack", s.Envelope().State())
	}
}

func TestSynthMutatesOnlyModulatorsWhenDue(t *testing.T) {
	s, err := New(rng.New(9), 44100, DefaultParams(), nil)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	var mutated []int
	s.OnMutate(func(index int, op Operator) {
		mutated = append(mutated, index)
	})

	r := rng.New(10)
	s.Play(r, 100, 440)
	if len(mutated) != 0 {
		t.Fatalf("mutation before deadline: %v", mutated)
	}

	before := s.mutateClock.Deadline()
	s.mutateClock = clock.Deadline(0)
	s.Play(r, 100, 440)
	if len(mutated) != 1 {
		t.Fatalf("mutations = %v, want exactly one", mutated)
	}
	if mutated[0] != 1 && mutated[0] != 2 {
		t.Fatalf("mutated operator %d, want 1 or 2", mutated[0])
	}
	if s.Operator(0).Signal() != signal.Sine || s.Operator(0).Ratio() != 1 {
		t.Fatalf("carrier changed: %v", s.Operator(0))
	}
	p := DefaultParams()
	if d := s.mutateClock.Deadline(); d < p.Mutate.Min || d > p.Mutate.Max {
		t.Fatalf("rearmed deadline %d outside %v (was %d)", d, p.Mutate, before)
	}
}

func TestSynthNextTicksMutationClock(t *testing.T) {
	s, err := New(rng.New(12), 44100, DefaultParams(), nil)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	s.mutateClock = clock.Deadline(3)
	for i := 0; i < 3; i++ {
		s.Next()
	}
	if !s.mutateClock.Ready() {
		t.Fatalf("mutation clock should be due after 3 samples")
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	for _, tc := range []struct {
		name   string
		mutate func(*Params)
	}{
		{"empty pool", func(p *Params) { p.Operators = nil }},
		{"inverted cutoff", func(p *Params) { p.Cutoff = rng.Float32Range{Min: 600, Max: 400} }},
		{"envelope overflow", func(p *Params) { p.Attack = rng.Float32Range{Min: 0.5, Max: 0.95} }},
		{"sustain above one", func(p *Params) { p.Sustain.Max = 1.5 }},
		{"zero ratio", func(p *Params) { p.Operators[0].Ratio = rng.Float32Range{} }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
