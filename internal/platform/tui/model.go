package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
	"github.com/vovakirdan/inertia/internal/levels"
	"github.com/vovakirdan/inertia/internal/storage"
)

// hudHeight is the number of terminal rows reserved below the playfield.
const hudHeight = 2

var hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for playing one level.
type Model struct {
	level  *engine.Level
	entry  levels.Entry
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	keys      *KeyMapper
	input     core.InputFrame
	energyBar progress.Model

	runSaved bool
	quitting bool
}

// NewModel creates a model playing the given level entry.
func NewModel(level *engine.Level, entry levels.Entry, store *storage.Store, cfg core.RuntimeConfig) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return Model{
		level:     level,
		entry:     entry,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-hudHeight),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		energyBar: bar,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.input) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-hudHeight, 1))
		m.energyBar.Width = max(msg.Width/3, 10)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the simulation by one fixed-rate step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	terminal := m.level.State() == engine.StateComplete || m.level.State() == engine.StateFailed

	if m.input.Has(core.ActionRestart) && terminal {
		m.level.Reset()
		m.runSaved = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.input.Has(core.ActionPause) {
		switch m.level.State() {
		case engine.StatePlaying:
			m.level.Pause()
		case engine.StatePaused:
			m.level.Resume()
		}
	}

	dt := 1.0 / float64(m.config.TickRate)
	result := m.level.Step(m.input, dt)

	// Record the run once on the terminal transition
	if result.Outcome != engine.OutcomeContinue && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveRun(m.entry.ID, m.level.Summary())
		}
		m.runSaved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield plus the HUD line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.level.Snapshot()
	DrawLevel(m.screen, snap)

	return RenderScreen(m.screen) + "\n" + m.hud(snap)
}

// hud builds the status line: energy bar, clock, score, stars on finish.
func (m Model) hud(snap engine.Snapshot) string {
	var b strings.Builder

	b.WriteString(hudStyle.Render("energy "))
	percent := 0.0
	if snap.EnergyMax > 0 {
		percent = snap.Energy / snap.EnergyMax
	}
	b.WriteString(m.energyBar.ViewAs(percent))

	if snap.TimeLimit > 0 {
		b.WriteString(hudStyle.Render(fmt.Sprintf("  time %5.1fs", snap.TimeLeft)))
	}
	b.WriteString(hudStyle.Render(fmt.Sprintf("  score %d", snap.Score)))

	if snap.State == "complete" {
		sum := m.level.Summary()
		b.WriteString("  " + strings.Repeat("★", sum.Stars) + strings.Repeat("☆", 3-sum.Stars))
	}
	return b.String()
}

// Run starts the Bubble Tea program for the given level.
func Run(level *engine.Level, entry levels.Entry, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(level, entry, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
