// Package poly generates an endless, self-mutating piece of music one sample
// at a time. A seed and a sample rate fully determine the output.
package poly

import (
	"fmt"
	"log/slog"

	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/sequence"
	"github.com/cbegin/poly-go/internal/synth"
)

// NoteEvent describes a note started by the sequence.
type NoteEvent struct {
	Sample    uint64 // index of the first sample of the note
	Step      int
	Length    int // samples
	Frequency float32
}

type MutationKind int

const (
	MutationNote MutationKind = iota
	MutationOperator
)

func (k MutationKind) String() string {
	if k == MutationOperator {
		return "operator"
	}
	return "note"
}

// MutationEvent reports a replaced note slot or modulator. Length and
// Frequency are set for note mutations, Signal and Ratio for operators.
type MutationEvent struct {
	Kind      MutationKind
	Sample    uint64
	Index     int
	Length    int
	Frequency float32
	Signal    string
	Ratio     float32
}

type Option func(*options)

type options struct {
	config   Config
	logger   *slog.Logger
	onNote   func(NoteEvent)
	onMutate func(MutationEvent)
}

func defaultOptions() options {
	return options{config: DefaultConfig()}
}

func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger routes construction dumps and mutation messages to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNoteHook installs a callback invoked from Next whenever a note starts,
// before that sample is rendered. It runs on the caller of Next; keep work
// brief and non-blocking.
func WithNoteHook(fn func(NoteEvent)) Option {
	return func(o *options) {
		o.onNote = fn
	}
}

// WithMutationHook installs a callback invoked from Next after a note slot
// or modulator is replaced.
func WithMutationHook(fn func(MutationEvent)) Option {
	return func(o *options) {
		o.onMutate = fn
	}
}

// Poly drives one audio stream. It is not safe for concurrent use; a single
// owner calls Next serially.
type Poly struct {
	seed       uint64
	sampleRate uint32
	rng        *rng.Rand
	sequence   *sequence.Sequence
	synth      *synth.Synth
	elapsed    uint64
	onNote     func(NoteEvent)
}

// New builds an engine. Random-selection failures surface as ErrRng.
func New(seed uint64, sampleRate uint32, opts ...Option) (*Poly, error) {
	if sampleRate == 0 {
		return nil, ErrSampleRate
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	log := o.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := rng.New(seed)
	log.Debug("[SEED]", "seed", seed)

	seq, err := sequence.New(r, float32(sampleRate), o.config.Sequence, log)
	if err != nil {
		return nil, fmt.Errorf("poly: %w", err)
	}
	log.Debug(seq.String())

	syn, err := synth.New(r, float32(sampleRate), o.config.Synth, log)
	if err != nil {
		return nil, fmt.Errorf("poly: %w", err)
	}
	log.Debug(syn.String())

	p := &Poly{
		seed:       seed,
		sampleRate: sampleRate,
		rng:        r,
		sequence:   seq,
		synth:      syn,
		onNote:     o.onNote,
	}
	if fn := o.onMutate; fn != nil {
		seq.OnMutate(func(index int, n sequence.Note) {
			fn(MutationEvent{
				Kind:      MutationNote,
				Sample:    p.elapsed,
				Index:     index,
				Length:    n.Length,
				Frequency: n.Frequency,
			})
		})
		syn.OnMutate(func(index int, op synth.Operator) {
			fn(MutationEvent{
				Kind:   MutationOperator,
				Sample: p.elapsed,
				Index:  index,
				Signal: op.Signal().String(),
				Ratio:  op.Ratio(),
			})
		})
	}
	return p, nil
}

// Next returns the next sample. It never fails and does not allocate.
func (p *Poly) Next() float32 {
	if ev, ok := p.sequence.Next(p.rng); ok {
		p.synth.Play(p.rng, ev.Length, ev.Frequency)
		if p.onNote != nil {
			p.onNote(NoteEvent{
				Sample:    p.elapsed,
				Step:      p.sequence.Step(),
				Length:    ev.Length,
				Frequency: ev.Frequency,
			})
		}
	}
	p.elapsed++
	return p.synth.Next()
}

// Process fills an interleaved stereo buffer, duplicating each sample to
// both channels.
func (p *Poly) Process(dst []float32) {
	for i := 0; i+1 < len(dst); i += 2 {
		v := p.Next()
		dst[i] = v
		dst[i+1] = v
	}
}

// ProcessMono fills dst with consecutive samples.
func (p *Poly) ProcessMono(dst []float32) {
	for i := range dst {
		dst[i] = p.Next()
	}
}

func (p *Poly) Seed() uint64       { return p.seed }
func (p *Poly) SampleRate() uint32 { return p.sampleRate }

// Elapsed returns the number of samples produced so far.
func (p *Poly) Elapsed() uint64 { return p.elapsed }

// Steps returns the active length of the note loop.
func (p *Poly) Steps() int { return p.sequence.Length() }

// StepSamples returns the length of one step in samples.
func (p *Poly) StepSamples() int { return p.sequence.Tempo() }

// BPM returns the drawn tempo, in beats per minute.
func (p *Poly) BPM() float64 {
	if p.sequence.Tempo() == 0 {
		return 0
	}
	return 60 * float64(p.sampleRate) / float64(p.sequence.Tempo())
}

func (p *Poly) String() string {
	return fmt.Sprintf("[SEED] %d %v %v", p.seed, p.sequence, p.synth)
}
