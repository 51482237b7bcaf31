// Package minesweeper adapts the mines engine to the platform: it owns a
// cursor, turns input actions into engine operations and draws the board
// into a core.Screen.
package minesweeper

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Screen layout.
const (
	hudHeight    = 2 // Status line and spacer above the board
	footerHeight = 1 // Key hints below the board
	cellWidth    = 2 // Each cell is a glyph and a separator
)

// Game is one player's view of a minesweeper session.
type Game struct {
	preset config.Preset
	engine *mines.Engine
	cursor mines.Coord

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	// elapsed is the clock readout refreshed by Tick.
	elapsed time.Duration
	last    mines.Result
	err     error
	opts    []mines.Option
}

// New creates a game for the given preset. Reset must be called before use.
func New(p config.Preset, opts ...mines.Option) *Game {
	return &Game{preset: p, opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mines"
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Minesweeper (%s)", g.preset.Label)
}

// Preset returns the board size being played.
func (g *Game) Preset() config.Preset {
	return g.preset
}

// Engine exposes the session for read-only inspection.
func (g *Game) Engine() *mines.Engine {
	return g.engine
}

// Reset starts a new session. A non-zero seed makes mine layouts
// reproducible; options passed to New take precedence over it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := []mines.Option{mines.WithPlacer(mines.NewRandomPlacer())}
	if cfg.Seed != 0 {
		opts = []mines.Option{mines.WithSeed(uint64(cfg.Seed))}
	}
	opts = append(opts, g.opts...)

	engine, err := g.preset.NewEngine(opts...)
	if err != nil {
		// Presets are validated on load; fall back to a playable board.
		g.err = err
		g.preset = config.DefaultPresets().List[0]
		engine, _ = g.preset.NewEngine(opts...)
	}

	g.engine = engine
	g.paused = false
	g.elapsed = 0
	g.last = mines.Result{}
	g.resize(cfg.ScreenW, cfg.ScreenH)
	g.centerCursor()
}

// Resize adapts the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh+hudHeight+footerHeight
}

func (g *Game) centerCursor() {
	g.cursor = mines.C(g.engine.Rows()/2, g.engine.Cols()/2)
}

// restart begins a new session on the same board size. The placer keeps
// its state, so the next layout differs.
func (g *Game) restart() {
	g.err = g.engine.Restart()
	g.paused = false
	g.elapsed = 0
	g.last = mines.Result{}
	g.centerCursor()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := false

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Changed: true}
	}

	if in.Has(core.ActionPause) && g.engine.Phase() == mines.PhaseActive {
		g.paused = !g.paused
		changed = true
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Changed: changed}
	}

	if g.moveCursor(in) {
		changed = true
	}

	switch {
	case in.Has(core.ActionReveal):
		changed = g.apply(g.engine.Reveal(g.cursor.Row, g.cursor.Col)) || changed
	case in.Has(core.ActionFlag):
		changed = g.apply(g.engine.ToggleFlag(g.cursor.Row, g.cursor.Col)) || changed
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) moveCursor(in core.InputFrame) bool {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	next := mines.C(
		core.Clamp(row, 0, g.engine.Rows()-1),
		core.Clamp(col, 0, g.engine.Cols()-1),
	)
	moved := next != g.cursor
	g.cursor = next
	return moved
}

// apply records the outcome of an engine call.
func (g *Game) apply(res mines.Result, err error) bool {
	g.err = err
	if err != nil {
		return true
	}
	if res.Changed {
		g.last = res
	}
	if g.engine.Phase().Over() {
		g.elapsed = g.engine.Elapsed(time.Time{})
	}
	return res.Changed
}

// Click moves the cursor to the cell under (x, y) and reveals it, or
// toggles its flag when alt is set.
func (g *Game) Click(x, y int, alt bool) core.StepResult {
	c, ok := g.CellAt(x, y)
	if !ok || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.cursor = c
	action := core.ActionReveal
	if alt {
		action = core.ActionFlag
	}
	res := g.Step(core.FrameOf(action))
	res.Changed = true
	return res
}

// CellAt maps a screen position to a board cell.
func (g *Game) CellAt(x, y int) (mines.Coord, bool) {
	box := g.boardRect()
	if !box.Contains(x, y) {
		return mines.Coord{}, false
	}
	dx := x - box.X - 1
	if dx < 1 {
		return mines.Coord{}, false
	}
	c := mines.C(y-box.Y-1, (dx-1)/cellWidth)
	if c.Row < 0 || c.Row >= g.engine.Rows() || c.Col >= g.engine.Cols() {
		return mines.Coord{}, false
	}
	return c, true
}

// Tick refreshes the clock readout.
func (g *Game) Tick(now time.Time) {
	g.elapsed = g.engine.Elapsed(now)
}

// Elapsed returns the clock readout as of the last Tick.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// LastResult returns the outcome of the last state-changing move.
func (g *Game) LastResult() mines.Result {
	return g.last
}

// Err returns the error of the last engine call, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the coarse game status.
func (g *Game) State() core.GameState {
	phase := g.engine.Phase()
	return core.GameState{
		Started:  g.engine.FirstMoveDone(),
		GameOver: phase.Over(),
		Won:      phase == mines.PhaseWon,
		Paused:   g.paused,
	}
}

// errorText turns the last engine error into a status line.
func (g *Game) errorText() string {
	switch {
	case g.err == nil:
		return ""
	case errors.Is(g.err, mines.ErrInvalidConfiguration):
		return "Board too dense for a safe first move"
	default:
		return g.err.Error()
	}
}
