package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// helpHeight is the number of lines reserved for the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model for one game. The game only changes on
// input; a once-per-interval clock message refreshes the timer readout.
type Model struct {
	game     core.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	state    core.GameState
	quitting bool
	back     bool

	// quitOnBack ends the program on Back when no picker is waiting.
	quitOnBack bool
}

// NewModel creates a model for the given game and resets it.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(nopWriter{})
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.help.Width = cfg.ScreenW
	m.game.Reset(gameConfig(cfg))
	m.state = m.game.State()
	return m
}

// gameConfig removes the help footer from the area given to the game.
func gameConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	return cfg
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return clockCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ClockMsg:
		m.game.Tick(time.Time(msg))
		return m, clockCmd(m.config.FrameDuration())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	default:
		m.step(m.game.Step(core.FrameOf(action)))
		return m, nil
	}
}

// handleMouse reveals with the left button and flags with the right one.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.game.(core.Pointer)
	if !ok || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.step(p.Click(msg.X, msg.Y, false))
	case tea.MouseButtonRight:
		m.step(p.Click(msg.X, msg.Y, true))
	}
	return m, nil
}

// step records the new state and logs game transitions.
func (m *Model) step(res core.StepResult) {
	prev := m.state
	m.state = res.State

	switch {
	case !prev.Started && res.State.Started && !res.State.GameOver:
		m.logger.Debug("game started", "game", m.game.Title())
	case !prev.GameOver && res.State.GameOver:
		m.logger.Info("game over", "game", m.game.Title(), "won", res.State.Won, "elapsed", elapsedOf(m.game))
	case prev.Started && !res.State.Started:
		m.logger.Debug("game restarted", "game", m.game.Title())
	}
}

// elapsedOf reads the clock of games that expose one.
func elapsedOf(g core.Game) time.Duration {
	if c, ok := g.(interface{ Elapsed() time.Duration }); ok {
		return c.Elapsed()
	}
	return 0
}

// handleResize adapts the screen. The session survives; games that cannot
// resize in place are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cfg := gameConfig(m.config)
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(interface{ Resize(w, h int) }); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else {
		m.game.Reset(cfg)
		m.state = m.game.State()
	}
	return m, nil
}

// View renders the game and the key help.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting reports whether the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked for the preset picker.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays a single game in the terminal until the user quits.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	m := NewModel(game, cfg, logger)
	m.quitOnBack = true
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// nopWriter discards log output when no logger is configured.
type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
