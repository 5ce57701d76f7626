package sequence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cbegin/poly-go/internal/clock"
	"github.com/cbegin/poly-go/internal/rng"
)

// Event is emitted when a step starts: the note length in samples and its
// pitch.
type Event struct {
	Length    int
	Frequency float32
}

// Sequence loops over up to Capacity notes drawn from one scale and
// periodically replaces one of them.
type Sequence struct {
	tempo       int
	scale       Scale
	notes       [Capacity]Note
	length      int
	mutate      rng.IntRange
	mutateClock clock.Clock
	noteClock   clock.Clock
	note        int
	log         *slog.Logger
	onMutate    func(index int, n Note)
}

// New draws a sequence from r. Construction is the only fallible step; Next
// never fails.
func New(r *rng.Rand, sampleRate float32, p Params, log *slog.Logger) (*Sequence, error) {
	bpm := r.Float32(p.Tempo)
	tempo := int((60 / bpm) * sampleRate)

	si, err := r.Index(len(p.Scales))
	if err != nil {
		return nil, fmt.Errorf("sequence scale: %w", err)
	}
	scale := p.Scales[si]

	length, err := rng.Choose(r, p.Metres)
	if err != nil {
		return nil, fmt.Errorf("sequence metre: %w", err)
	}
	if length < 1 || length > Capacity {
		return nil, fmt.Errorf("sequence metre %d outside 1..%d", length, Capacity)
	}

	s := &Sequence{
		tempo:  tempo,
		scale:  scale,
		length: length,
		mutate: p.Mutate,
		note:   length - 1,
		log:    log,
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	for i := 0; i < length; i++ {
		n, err := NewNote(r, &s.scale, length)
		if err != nil {
			return nil, fmt.Errorf("sequence note %d: %w", i, err)
		}
		s.notes[i] = n
	}
	s.mutateClock = clock.Deadline(r.Int(p.Mutate))
	return s, nil
}

// OnMutate installs a callback run after a note slot is replaced.
func (s *Sequence) OnMutate(fn func(index int, n Note)) {
	s.onMutate = fn
}

// Next advances one sample. It reports an Event when a new step begins.
// Mutation and stepping are independent; a mutation never starts a note.
func (s *Sequence) Next(r *rng.Rand) (Event, bool) {
	if s.mutateClock.Tick() {
		s.mutateNote(r)
	}
	if s.noteClock.Tick() {
		return s.step(), true
	}
	return Event{}, false
}

func (s *Sequence) mutateNote(r *rng.Rand) {
	s.mutateClock.Reset(r.Int(s.mutate))
	if s.length < 2 {
		return
	}

	// any slot but the one playing
	index := r.IntN(s.length - 1)
	if index >= s.note {
		index++
	}

	n, err := NewNote(r, &s.scale, s.length)
	if err != nil {
		s.log.Error("note mutate failed", "index", index, "err", err)
		return
	}
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("note mutated", "index", index, "note", n.String())
	}
	s.notes[index] = n
	if s.onMutate != nil {
		s.onMutate(index, n)
	}
}

func (s *Sequence) step() Event {
	s.note++
	if s.note >= s.length {
		s.note = 0
	}
	n := s.notes[s.note]
	length := n.Length * s.tempo
	s.noteClock.Reset(length)
	return Event{Length: length, Frequency: n.Frequency}
}

// Tempo returns the number of samples per step.
func (s *Sequence) Tempo() int      { return s.tempo }
func (s *Sequence) Length() int     { return s.length }
func (s *Sequence) Step() int       { return s.note }
func (s *Sequence) Scale() Scale    { return s.scale }
func (s *Sequence) Note(i int) Note { return s.notes[i] }

func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteString("[NOTES] ")
	for i := 0; i < s.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.notes[i].String())
	}
	return b.String()
}
