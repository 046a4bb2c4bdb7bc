package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MnKimJ/CPS251/internal/studytimer"
	"github.com/MnKimJ/CPS251/internal/telemetry"
)

const maxProgressWidth = 60

// TickMsg is one countdown tick. Epoch ties it to the run that scheduled it;
// ticks from an earlier run are dropped and not rescheduled, which is what
// ends a countdown loop after a reset.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

type TimerModel struct {
	timer    *studytimer.Timer
	interval time.Duration

	keys     timerKeyMap
	help     help.Model
	progress progress.Model

	width    int
	height   int
	Quitting bool
}

func NewTimerModel(t *studytimer.Timer, interval time.Duration) TimerModel {
	if interval <= 0 {
		interval = time.Second
	}
	return TimerModel{
		timer:    t,
		interval: interval,
		keys:     newTimerKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m TimerModel) Timer() *studytimer.Timer { return m.timer }

// Init does nothing: the timer waits for the start control.
func (m TimerModel) Init() tea.Cmd {
	return nil
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			if epoch, running := m.timer.Toggle(); running {
				return m, m.tick(epoch)
			}
		case key.Matches(msg, m.keys.Preset):
			for i, k := range presetKeys {
				if msg.String() == k && i < len(studytimer.Presets) {
					m.setSessionLength(studytimer.Presets[i])
				}
			}
		case key.Matches(msg, m.keys.Next):
			m.cyclePreset(1)
		case key.Matches(msg, m.keys.Prev):
			m.cyclePreset(-1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = msg.Width - 10
		if m.progress.Width > maxProgressWidth {
			m.progress.Width = maxProgressWidth
		}
		return m, nil

	case TickMsg:
		// Expiry is reported by the timer's observers.
		if m.timer.Tick(msg.Epoch) == studytimer.TickCounted {
			return m, m.tick(msg.Epoch)
		}
		return m, nil
	}

	return m, nil
}

func (m TimerModel) tick(epoch uint64) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}

func (m *TimerModel) setSessionLength(minutes int) {
	if err := m.timer.SetSessionLength(minutes); err != nil {
		telemetry.LogError("Session length change failed", err)
	}
}

func (m *TimerModel) cyclePreset(step int) {
	current := m.timer.State().SessionMinutes
	idx := 0
	for i, p := range studytimer.Presets {
		if p == current {
			idx = i
			break
		}
	}
	n := len(studytimer.Presets)
	m.setSessionLength(studytimer.Presets[((idx+step)%n+n)%n])
}

func (m TimerModel) View() string {
	if m.Quitting {
		return ""
	}

	st := m.timer.State()
	pct := m.timer.Progress()

	var s strings.Builder

	s.WriteString(headerStyle.Render("Study Timer") + "\n\n")
	s.WriteString(clockStyle.Render(m.timer.Clock()) + "\n")
	s.WriteString(progressLabelStyle.Render(fmt.Sprintf("%d%% Complete", pct)) + "\n")
	s.WriteString(m.progress.ViewAs(float64(pct)/100) + "\n\n")

	label := "Start"
	if st.Running {
		label = "Reset"
	}
	s.WriteString(buttonStyle.Render(label) + "\n\n")

	s.WriteString(summaryStyle.Render(fmt.Sprintf("Session Length: %d minutes", st.SessionMinutes)) + "\n")
	presets := make([]string, 0, len(studytimer.Presets))
	for _, minutes := range studytimer.Presets {
		style := dimPresetStyle
		if minutes == st.SessionMinutes {
			style = presetStyle
		}
		presets = append(presets, style.Render(fmt.Sprintf("%dm", minutes)))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, presets...) + "\n\n")

	s.WriteString(counterStyle.Render(fmt.Sprintf("Completed Sessions: %d", st.CompletedSessions)) + "\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
	}
	return s.String()
}
