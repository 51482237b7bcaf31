package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// SessionModel manages the full session flow: picker -> game -> picker.
// This is the top-level model used by the menu command and SSH sessions.
type SessionModel struct {
	presets  config.Presets
	config   core.RuntimeConfig
	logger   *log.Logger
	picker   PickerModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session that starts on the picker.
func NewSessionModel(presets config.Presets, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(nopWriter{})
	}
	return SessionModel{
		presets: presets,
		config:  cfg,
		logger:  logger,
		picker:  NewPickerModel(presets, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clock messages left over from a finished game are dropped here.
	if _, ok := msg.(ClockMsg); ok {
		return m, nil
	}

	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(PickerModel); ok {
		m.picker = pm
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if p := m.picker.Selected(); p != nil {
		m.logger.Info("game selected", "preset", p.String())
		game := NewModel(minesweeper.New(*p), m.config, m.logger)
		m.game = &game
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.picker = NewPickerModel(m.presets, m.config.ScreenW, m.config.ScreenH)
		return m, m.picker.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}

// InGame reports whether a board is being played.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunMenu runs the picker and game loop in the terminal until the player quits.
func RunMenu(presets config.Presets, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(presets, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
