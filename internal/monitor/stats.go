package monitor

import (
	"math"
	"sync/atomic"
)

const maxSteps = 8

// Stats is written from the audio thread and read by the view. Every field
// is atomic, so neither side blocks.
type Stats struct {
	steps     atomic.Int32
	step      atomic.Int32
	pitch     [maxSteps]atomic.Uint32 // float32 bits
	sample    atomic.Uint64
	notes     atomic.Uint64
	noteMuts  atomic.Uint64
	voiceMuts atomic.Uint64
	voice     atomic.Pointer[string]
}

// Snapshot is a consistent-enough copy of Stats for rendering.
type Snapshot struct {
	Steps     int
	Step      int
	Pitch     [maxSteps]float32
	Sample    uint64
	Notes     uint64
	NoteMuts  uint64
	VoiceMuts uint64
	Voice     string
}

func NewStats(steps int) *Stats {
	s := &Stats{}
	s.Reset(steps)
	return s
}

// Reset clears the counters for a new engine with the given loop length.
func (s *Stats) Reset(steps int) {
	s.steps.Store(int32(min(max(steps, 0), maxSteps)))
	s.step.Store(-1)
	for i := range s.pitch {
		s.pitch[i].Store(0)
	}
	s.sample.Store(0)
	s.notes.Store(0)
	s.noteMuts.Store(0)
	s.voiceMuts.Store(0)
	s.voice.Store(nil)
}

// Note records a note starting on step at sample.
func (s *Stats) Note(sample uint64, step int, frequency float32) {
	if step >= 0 && step < maxSteps {
		s.pitch[step].Store(math.Float32bits(frequency))
	}
	s.step.Store(int32(step))
	s.sample.Store(sample)
	s.notes.Add(1)
}

// NoteMutation records a replaced note slot.
func (s *Stats) NoteMutation(step int, frequency float32) {
	if step >= 0 && step < maxSteps {
		s.pitch[step].Store(math.Float32bits(frequency))
	}
	s.noteMuts.Add(1)
}

// VoiceMutation records a replaced modulator, described by desc.
func (s *Stats) VoiceMutation(desc string) {
	s.voice.Store(&desc)
	s.voiceMuts.Add(1)
}

func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:     int(s.steps.Load()),
		Step:      int(s.step.Load()),
		Sample:    s.sample.Load(),
		Notes:     s.notes.Load(),
		NoteMuts:  s.noteMuts.Load(),
		VoiceMuts: s.voiceMuts.Load(),
	}
	for i := range s.pitch {
		snap.Pitch[i] = math.Float32frombits(s.pitch[i].Load())
	}
	if v := s.voice.Load(); v != nil {
		snap.Voice = *v
	}
	return snap
}
