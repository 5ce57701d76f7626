// Package monitor is a terminal view of a running engine: the note loop with
// its playhead, mutation counters and transport controls.
package monitor

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dcfff"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff"))
	playheadStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

const (
	refresh    = 60 * time.Millisecond
	volumeStep = 0.1
	maxVolume  = 2.0
)

// Controls is the transport the view drives. *poly.Player satisfies it.
type Controls interface {
	Pause()
	Resume()
	SetMasterVolume(float64)
	MasterVolume() float64
}

type Model struct {
	Title      string
	SampleRate uint32
	stats      *Stats
	ctl        Controls
	snap       Snapshot
	paused     bool
	quitting   bool
}

type tickMsg time.Time

func New(title string, sampleRate uint32, stats *Stats, ctl Controls) Model {
	return Model{Title: title, SampleRate: sampleRate, stats: stats, ctl: ctl, snap: stats.Snapshot()}
}

func tick() tea.Cmd {
	return tea.Tick(refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.stats.Snapshot()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case " ", "p":
			if m.ctl == nil {
				break
			}
			if m.paused {
				m.ctl.Resume()
			} else {
				m.ctl.Pause()
			}
			m.paused = !m.paused

		case "+", "=", "up":
			if m.ctl != nil {
				m.ctl.SetMasterVolume(min(m.ctl.MasterVolume()+volumeStep, maxVolume))
			}

		case "-", "down":
			if m.ctl != nil {
				m.ctl.SetMasterVolume(max(m.ctl.MasterVolume()-volumeStep, 0))
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title) + "\n\n")

	s := m.snap
	for i := 0; i < s.Steps; i++ {
		cell := fmt.Sprintf(" %7.2f ", s.Pitch[i])
		switch {
		case i == s.Step:
			b.WriteString(playheadStyle.Render(cell))
		case s.Pitch[i] > 0:
			b.WriteString(activeStyle.Render(cell))
		default:
			b.WriteString(dimStyle.Render(cell))
		}
	}
	b.WriteString("\n\n")

	elapsed := "0s"
	if m.SampleRate > 0 {
		elapsed = (time.Duration(s.Sample) * time.Second / time.Duration(m.SampleRate)).Truncate(time.Second).String()
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("notes %d  note mutations %d  voice mutations %d  at %s",
		s.Notes, s.NoteMuts, s.VoiceMuts, elapsed)) + "\n")
	if s.Voice != "" {
		b.WriteString(statusStyle.Render("last voice "+s.Voice) + "\n")
	}
	if m.ctl != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("volume %.1f", m.ctl.MasterVolume())))
		if m.paused {
			b.WriteString("  " + pausedStyle.Render("paused"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + dimStyle.Render("space: pause • +/-: volume • q: quit"))
	return b.String()
}

// Run blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
