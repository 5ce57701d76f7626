// Package midiexport records the notes an engine plays and writes them as a
// Standard MIDI File. One sequence step maps to one quarter note.
package midiexport

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerStep = 960
	Velocity     = 100

	// BendRange is the pitch bend range assumed by receivers, in semitones.
	BendRange = 2
)

type note struct {
	sample    uint64
	length    int
	frequency float32
}

// Recorder collects notes. It is not safe for concurrent use.
type Recorder struct {
	Name        string
	Channel     uint8
	sampleRate  uint32
	stepSamples int
	steps       int
	notes       []note
}

// NewRecorder prepares a recorder for an engine with the given step length
// (in samples) and loop length (in steps).
func NewRecorder(sampleRate uint32, stepSamples, steps int) (*Recorder, error) {
	if sampleRate == 0 || stepSamples <= 0 {
		return nil, fmt.Errorf("midiexport: invalid timing %d Hz, %d samples per step", sampleRate, stepSamples)
	}
	return &Recorder{
		Name:        "poly",
		sampleRate:  sampleRate,
		stepSamples: stepSamples,
		steps:       steps,
	}, nil
}

// Add records a note starting at sample and lasting length samples.
func (r *Recorder) Add(sample uint64, length int, frequency float32) {
	r.notes = append(r.notes, note{sample: sample, length: length, frequency: frequency})
}

func (r *Recorder) Len() int { return len(r.notes) }

// BPM is the tempo written to the file.
func (r *Recorder) BPM() float64 {
	return 60 * float64(r.sampleRate) / float64(r.stepSamples)
}

func (r *Recorder) ticks(samples uint64) uint64 {
	return samples * TicksPerStep / uint64(r.stepSamples)
}

type timed struct {
	tick uint64
	off  bool
	msg  midi.Message
}

// SMF builds the file: a single track holding tempo, metre and the notes.
func (r *Recorder) SMF() (*smf.SMF, error) {
	var evs []timed
	for _, n := range r.notes {
		if n.length <= 0 || !(n.frequency > 0) {
			continue
		}
		key, bend := FrequencyToNote(n.frequency)
		start := r.ticks(n.sample)
		end := r.ticks(n.sample + uint64(n.length))
		evs = append(evs,
			timed{tick: start, msg: midi.Pitchbend(r.Channel, bend)},
			timed{tick: start, msg: midi.NoteOn(r.Channel, key, Velocity)},
			timed{tick: end, off: true, msg: midi.NoteOff(r.Channel, key)},
		)
	}
	// a note ending on the tick the next one starts must release first
	slices.SortStableFunc(evs, func(a, b timed) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		switch {
		case a.off && !b.off:
			return -1
		case b.off && !a.off:
			return 1
		}
		return 0
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(r.Name))
	if r.steps > 0 && r.steps <= math.MaxUint8 {
		track.Add(0, smf.MetaMeter(uint8(r.steps), 4))
	}
	track.Add(0, smf.MetaTempo(r.BPM()))
	var last uint64
	for _, ev := range evs {
		delta := ev.tick - last
		if delta > math.MaxUint32 {
			return nil, errors.New("midiexport: recording too long")
		}
		track.Add(uint32(delta), ev.msg)
		last = ev.tick
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerStep)
	if err := s.Add(track); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	s, err := r.SMF()
	if err != nil {
		return 0, err
	}
	return s.WriteTo(w)
}

func (r *Recorder) WriteFile(path string) error {
	s, err := r.SMF()
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}

// FrequencyToNote returns the nearest MIDI key and the pitch bend that
// corrects the remaining offset, assuming a BendRange of 2 semitones.
func FrequencyToNote(frequency float32) (key uint8, bend int16) {
	if !(frequency > 0) {
		return 0, 0
	}
	m := 69 + 12*math.Log2(float64(frequency)/440)
	k := math.Round(m)
	if k < 0 {
		k = 0
	}
	if k > 127 {
		k = 127
	}
	b := math.Round((m - k) / BendRange * 8192)
	if b < -8192 {
		b = -8192
	}
	if b > 8191 {
		b = 8191
	}
	return uint8(k), int16(b)
}
