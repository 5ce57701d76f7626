package synth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cbegin/poly-go/internal/clock"
	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/signal"
)

// Operators per voice. Index 0 is the fixed sine carrier; 1 and 2 are the
// modulators that mutate.
const Operators = 3

// Synth is the single voice of the engine: three multiplied operators, an
// envelope and a resonant low-pass filter.
type Synth struct {
	sampleRate  float32
	params      Params
	operators   [Operators]Operator
	adsr        ADSR
	filter      Filter
	mutateClock clock.Clock
	log         *slog.Logger
	onMutate    func(index int, op Operator)
}

// New draws a voice from r. It fails only if the operator pool is empty.
func New(r *rng.Rand, sampleRate float32, p Params, log *slog.Logger) (*Synth, error) {
	s := &Synth{
		sampleRate: sampleRate,
		params:     p,
		log:        log,
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.operators[0] = NewOperator(sampleRate, 1.0, signal.Sine)
	for i := 1; i < Operators; i++ {
		op, err := RandomOperator(r, sampleRate, p.Operators)
		if err != nil {
			return nil, fmt.Errorf("synth operator %d: %w", i, err)
		}
		s.operators[i] = op
	}
	s.adsr = NewADSR(r, p)
	s.filter = NewFilter(r, sampleRate, p)
	s.mutateClock = clock.Deadline(r.Int(p.Mutate))
	return s, nil
}

// OnMutate installs a callback run after a modulator is replaced. It is
// called from Play; keep it brief.
func (s *Synth) OnMutate(fn func(index int, op Operator)) {
	s.onMutate = fn
}

// Play retriggers the voice. A due mutation is applied first.
func (s *Synth) Play(r *rng.Rand, length int, frequency float32) {
	if s.mutateClock.Ready() {
		s.mutate(r)
	}
	for i := range s.operators {
		s.operators[i].SetFrequency(frequency)
	}
	s.adsr.Start(length)
}

// Next renders one filtered sample.
func (s *Synth) Next() float32 {
	s.mutateClock.Tick()

	sample := float32(1)
	for i := range s.operators {
		sample *= s.operators[i].Next()
	}
	return s.filter.Generate(sample * s.adsr.Next())
}

func (s *Synth) mutate(r *rng.Rand) {
	s.mutateClock.Reset(r.Int(s.params.Mutate))

	index := 1 + r.IntN(Operators-1)
	op, err := RandomOperator(r, s.sampleRate, s.params.Operators)
	if err != nil {
		s.log.Error("operator mutate failed", "index", index, "err", err)
		return
	}
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("operator mutated", "index", index, "operator", op.String())
	}
	s.operators[index] = op
	if s.onMutate != nil {
		s.onMutate(index, op)
	}
}

func (s *Synth) Operator(i int) Operator { return s.operators[i] }
func (s *Synth) Envelope() *ADSR         { return &s.adsr }
func (s *Synth) Filter() Filter          { return s.filter }

func (s *Synth) String() string {
	return fmt.Sprintf("[FILTER] %v [ADSR] %v [OPERATORS] %v, %v, %v",
		s.filter, s.adsr, s.operators[0], s.operators[1], s.operators[2])
}
