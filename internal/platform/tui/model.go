package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// Model is the Bubble Tea model that drives a snake game.
// It owns the current state; the engine only computes successors.
type Model struct {
	engine   *game.Engine
	state    game.State
	screen   *core.Screen
	renderer Renderer
	palette  Palette
	keys     input.KeyMap
	help     help.Model
	inputs   input.Collector
	polling  bool // A poll for the current input frame is scheduled
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with a fresh game.
func NewModel(cfg core.RuntimeConfig, conf config.Config, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock <= 0 {
		cfg.Clock = conf.Clock
	}

	keys := input.NewKeyMap(conf.Keys)
	engine := game.New(cfg.Seed)

	h := help.New()
	h.Width = cfg.ScreenW

	logger.Debug("game initialized", "seed", cfg.Seed, "clock", cfg.Clock)

	return Model{
		engine:   engine,
		state:    engine.Init(),
		screen:   newScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(keys),
		palette:  NewPalette(conf.Theme),
		keys:     keys,
		help:     h,
		config:   cfg,
		logger:   logger,
	}
}

// newScreen sizes the buffer to the layout, or smaller if the terminal is.
// One row is kept for the help line.
func newScreen(termW, termH int) *core.Screen {
	return core.NewScreen(screenSize(termW, termH))
}

func screenSize(termW, termH int) (int, int) {
	return core.Clamp(termW, 0, LayoutW), core.Clamp(termH-1, 0, LayoutH)
}

// Init starts the step clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(stepInterval(m.config.Clock, m.state.Speed))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case pollMsg:
		m.polling = false
		if !m.inputs.Pending() {
			return m, nil
		}
		return m.advance(m.inputs.Take())

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the input of a key press until the frame ends.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Map(msg)
	if in == game.InputNone {
		return m, nil
	}

	m.inputs.Push(in)
	if m.polling {
		return m, nil
	}
	m.polling = true
	return m, pollCmd(frameDuration(m.config.Clock))
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(screenSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs a full step and schedules the next one at the current speed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next, cmd := m.advance(game.InputNone)
	if next.quitting {
		return next, cmd
	}
	return next, tickCmd(stepInterval(next.config.Clock, next.state.Speed))
}

// advance applies one input to the game.
func (m Model) advance(in game.Input) (Model, tea.Cmd) {
	prev := m.state
	m.state = m.engine.Step(in, prev)
	m.logTransition(in, prev)

	if m.state.Status == game.StatusExited {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) logTransition(in game.Input, prev game.State) {
	next := m.state

	switch {
	case prev.Status == game.StatusRunning && next.Status == game.StatusOver:
		m.logger.Info("game over", "score", next.Score(), "length", next.Length())
	case prev.Status == game.StatusOver && next.Status == game.StatusRunning:
		m.logger.Info("game restarted", "input", in)
	case next.Status == game.StatusExited && prev.Status != game.StatusExited:
		m.logger.Info("game exited", "score", next.Score())
	case next.ApplesEaten > prev.ApplesEaten:
		m.logger.Debug("apple eaten", "apples", next.ApplesEaten, "speed", next.Speed)
		if next.Board.Count(game.KindApple) == 0 {
			m.logger.Warn("board full, no apple placed", "length", next.Length())
		}
	}
}

// State returns the current game state.
func (m Model) State() game.State {
	return m.state
}

// View renders the board with the help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.state.Snapshot())
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.palette),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program and blocks until the game exits.
// It returns the final state.
func Run(cfg core.RuntimeConfig, conf config.Config, logger *log.Logger) (game.State, error) {
	model := NewModel(cfg, conf, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return model.State(), nil
}
