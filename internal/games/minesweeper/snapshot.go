package minesweeper

import (
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Snapshot captures the full game state for determinism testing.
type Snapshot struct {
	Preset config.Preset
	Board  mines.Snapshot
	Cursor mines.Coord
	Paused bool
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Preset: g.preset,
		Board:  g.engine.Snapshot(),
		Cursor: g.cursor,
		Paused: g.paused,
	}
}
