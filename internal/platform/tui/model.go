package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Model is the Bubble Tea model driving the game loop. The simulation
// advances only on TickMsg; key presses latch input for the next tick.
type Model struct {
	game    *game.Game
	screen  *core.Screen
	store   *storage.Store
	sound   *audio.Manager
	keys    KeyMap
	logger  *log.Logger
	cfg     config.Config
	runtime core.RuntimeConfig

	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	runRecorded bool // Whether the current game over was already logged

	// Session log shown on the game-over overlay, refreshed per episode.
	bestRun    int
	recentRuns []storage.Run
}

// NewModel creates the model sized to the given terminal dimensions.
func NewModel(g *game.Game, store *storage.Store, sound *audio.Manager, rt core.RuntimeConfig, termW, termH int, logger *log.Logger) Model {
	return Model{
		game:       g,
		screen:     core.NewScreen(termW, termH),
		store:      store,
		sound:      sound,
		keys:       NewKeyMap(g.Config().Controls.FlapKeys),
		logger:     logger,
		cfg:        g.Config(),
		runtime:    rt,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches input actions for the next simulation tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.sound != nil {
			m.sound.Cleanup()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flap):
		m.inputFrame.Set(core.ActionFlap)
	}

	return m, nil
}

// handleTick runs one simulation step and logs the run when an episode
// ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	if result.State.GameOver && !m.runRecorded {
		if m.store != nil {
			if _, err := m.store.RecordRun(result.State.Score, m.game.Snapshot().Tick); err != nil {
				m.logger.Warn("could not record run", "error", err)
			}
			if best, err := m.store.BestScore(); err == nil {
				m.bestRun = best
			}
			if runs, err := m.store.RecentRuns(3); err == nil {
				m.recentRuns = runs
			}
		}
		m.runRecorded = true
	}
	if !result.State.GameOver {
		m.runRecorded = false
	}
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawSnapshot(m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(g *game.Game, store *storage.Store, sound *audio.Manager, rt core.RuntimeConfig, termW, termH int, logger *log.Logger) error {
	model := NewModel(g, store, sound, rt, termW, termH, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
