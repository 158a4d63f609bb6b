package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/autopilot"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/storage"
)

// Options configures a game session.
type Options struct {
	Autopilot bool
	Seed      int64 // 0 means time-based
	TickRate  int
	ScreenW   int // Terminal columns
	ScreenH   int // Terminal rows
}

// Model is the Bubble Tea model driving one simulation run.
type Model struct {
	level    levels.Level
	simCfg   sim.Config
	world    *sim.World
	store    *storage.Store
	err      error // Materialization error, shown instead of the world

	autopilotOn  bool
	lastDecision autopilot.Decision
	jumpQueued   bool
	paused       bool
	seed         int64
	tickRate     int
	width        int
	height       int
	runSaved     bool
	quitting     bool
	backToMenu   bool
}

// NewModel creates a game model for the given level.
func NewModel(level levels.Level, simCfg sim.Config, store *storage.Store, opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		level:       level,
		simCfg:      simCfg,
		store:       store,
		autopilotOn: opts.Autopilot,
		seed:        seed,
		tickRate:    opts.TickRate,
		width:       opts.ScreenW,
		height:      opts.ScreenH,
	}
	m.world, m.err = levels.Materialize(level, simCfg, seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "up", "w":
		if !m.autopilotOn {
			m.jumpQueued = true
		}
	case "a":
		m.autopilotOn = !m.autopilotOn
	case "p", "esc":
		m.paused = !m.paused
	case "r":
		if m.world != nil && m.world.GameOver {
			return m.restart()
		}
	case "b":
		if m.world == nil || m.world.GameOver || m.paused {
			m.backToMenu = true
		}
	}
	return m, nil
}

// restart rematerializes the level with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	m.world, m.err = levels.Materialize(m.level, m.simCfg, m.seed)
	m.lastDecision = autopilot.Decision{}
	m.jumpQueued = false
	m.paused = false
	m.runSaved = false
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.err != nil || m.world == nil || m.paused {
		return m, tickCmd(m.tickRate)
	}

	if m.world.GameOver {
		m.saveRun()
		return m, tickCmd(m.tickRate)
	}

	jump := m.jumpQueued
	if m.autopilotOn {
		m.lastDecision = autopilot.Decide(m.world.Snapshot())
		jump = m.lastDecision.Jump
	}
	m.jumpQueued = false

	result := m.world.Step(jump)
	if result.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.tickRate)
}

// saveRun persists the finished run once, best effort.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	mode := storage.ModeManual
	if m.autopilotOn {
		mode = storage.ModeAutopilot
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunEntry{
		LevelID: m.level.ID,
		Score:   m.world.Score,
		Frames:  m.world.Frame,
		Mode:    mode,
		Cause:   m.world.Cause.String(),
	})
	m.runSaved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Cannot load level %s: %v\n\nPress Q to quit.", m.level.ID, m.err)
	}
	return renderWorld(m.world, m.lastDecision, m.autopilotOn, m.paused, m.width, m.height)
}

// IsQuitting returns true once the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the user asked to return to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one level.
func Run(level levels.Level, simCfg sim.Config, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(level, simCfg, store, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
