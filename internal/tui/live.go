// Package tui renders a running wash-in as a live terminal view: a readout
// of the seven pressures next to a scrolling alveolar-pressure graph.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/umg-minai/simva/internal/uptake"
)

const (
	graphWidth      = 70
	graphHeight     = 12
	historyCapacity = 600
	stepsPerFrame   = 2
)

type TickMsg time.Time

// Model drives one simulation cursor at the frame rate.
type Model struct {
	sim   *uptake.Simulator
	agent string
	pinsp float64
	opts  uptake.Options

	cursor  *uptake.Cursor
	last    uptake.Row
	history []float64
	running bool
	done    bool
}

// NewModel validates the scenario and prepares the first cursor.
func NewModel(agent string, sim *uptake.Simulator, pinsp float64, opts uptake.Options) (Model, error) {
	cursor, err := sim.Stream(pinsp, opts)
	if err != nil {
		return Model{}, err
	}
	return Model{
		sim:     sim,
		agent:   agent,
		pinsp:   pinsp,
		opts:    opts,
		cursor:  cursor,
		history: make([]float64, 0, historyCapacity),
		running: true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && !m.done {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < stepsPerFrame; i++ {
		row, ok := m.cursor.Next()
		if !ok {
			m.done = true
			m.running = false
			return
		}
		m.last = row
		if len(m.history) >= historyCapacity {
			m.history = m.history[1:]
		}
		m.history = append(m.history, row.Palv)
	}
}

func (m *Model) reset() {
	cursor, err := m.sim.Stream(m.pinsp, m.opts)
	if err != nil {
		return
	}
	m.cursor = cursor
	m.last = uptake.Row{}
	m.history = m.history[:0]
	m.running = true
	m.done = false
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("simva · %s wash-in", m.agent))

	stats := []struct {
		label string
		value float64
	}{
		{"t (min)", m.last.Time},
		{"pinsp", m.last.Pinsp},
		{"palv", m.last.Palv},
		{"part", m.last.Part},
		{"pvrg", m.last.Pvrg},
		{"pmus", m.last.Pmus},
		{"pfat", m.last.Pfat},
		{"pcv", m.last.Pcv},
	}
	var b strings.Builder
	for _, s := range stats {
		b.WriteString(labelStyle.Render(s.label))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%9.4f", s.value)))
		b.WriteString("\n")
	}
	switch {
	case m.done:
		b.WriteString(doneStyle.Render("done"))
	case !m.running:
		b.WriteString(pausedStyle.Render("paused"))
	}

	graph := "waiting for data"
	if len(m.history) > 1 {
		graph = asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("palv (alveolar)"),
		)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		statsStyle.Render(b.String()),
		graphStyle.Render(graph),
	)
	help := helpStyle.Render("space pause · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
