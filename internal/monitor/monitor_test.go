package monitor

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeControls struct {
	paused bool
	volume float64
}

func (f *fakeControls) Pause()                    { f.paused = true }
func (f *fakeControls) Resume()                   { f.paused = false }
func (f *fakeControls) SetMasterVolume(v float64) { f.volume = v }
func (f *fakeControls) MasterVolume() float64     { return f.volume }

func TestStatsSnapshot(t *testing.T) {
	s := NewStats(4)
	if snap := s.Snapshot(); snap.Steps != 4 || snap.Step != -1 {
		t.Fatalf("fresh snapshot = %+v", snap)
	}
	s.Note(0, 0, 440)
	s.Note(100, 1, 550)
	s.NoteMutation(3, 660)
	s.VoiceMutation("(Saw, 0.50)")

	snap := s.Snapshot()
	if snap.Step != 1 || snap.Sample != 100 || snap.Notes != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Pitch[0] != 440 || snap.Pitch[1] != 550 || snap.Pitch[3] != 660 {
		t.Fatalf("pitch = %v", snap.Pitch)
	}
	if snap.NoteMuts != 1 || snap.VoiceMuts != 1 || snap.Voice != "(Saw, 0.50)" {
		t.Fatalf("mutations = %+v", snap)
	}

	s.Reset(12)
	snap = s.Snapshot()
	if snap.Steps != maxSteps || snap.Notes != 0 || snap.Voice != "" {
		t.Fatalf("after reset = %+v", snap)
	}
}

func TestStatsIgnoresOutOfRangeStep(t *testing.T) {
	s := NewStats(3)
	s.Note(0, 9, 440)
	s.NoteMutation(-1, 440)
	for i, p := range s.Snapshot().Pitch {
		if p != 0 {
			t.Fatalf("pitch[%d] = %v", i, p)
		}
	}
}

func TestModelKeys(t *testing.T) {
	ctl := &fakeControls{volume: 1}
	var m tea.Model = New("poly", 44100, NewStats(4), ctl)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !ctl.paused {
		t.Fatal("space should pause")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Fatal("view should show paused")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if ctl.paused {
		t.Fatal("p should resume")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if math.Abs(ctl.volume-0.9) > 1e-9 {
		t.Fatalf("volume = %v, want 0.9", ctl.volume)
	}
	ctl.volume = 1.95
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if ctl.volume != maxVolume {
		t.Fatalf("volume = %v, want clamp at %v", ctl.volume, maxVolume)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}

func TestModelViewShowsLoop(t *testing.T) {
	stats := NewStats(3)
	stats.Note(44100*3, 2, 523.25)
	var m tea.Model = New("poly 7", 44100, stats, nil)
	m, _ = m.Update(tickMsg{})
	view := m.View()
	for _, want := range []string{"poly 7", "523.25", "notes 1", "at 3s"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "volume") {
		t.Fatal("view without controls should not show volume")
	}
}
