package mines

import (
	"fmt"
	"strings"
	"time"
)

// CellState is what a player may know about a cell.
type CellState int

const (
	// CellHidden is an unopened, unflagged cell. Unrevealed mines always
	// read as hidden while the game runs.
	CellHidden CellState = iota
	// CellFlagged is a hidden cell carrying a flag.
	CellFlagged
	// CellRevealed is an opened cell; its Value is meaningful.
	CellRevealed
	// CellFlaggedMine is a correctly flagged mine after the game ended.
	CellFlaggedMine
	// CellMisflagged is a flag on a safe cell after the game ended.
	CellMisflagged
)

var cellStateNames = [...]string{
	CellHidden:      "hidden",
	CellFlagged:     "flagged",
	CellRevealed:    "revealed",
	CellFlaggedMine: "flagged_mine",
	CellMisflagged:  "misflagged",
}

func (s CellState) String() string {
	if s < 0 || int(s) >= len(cellStateNames) {
		return "unknown"
	}
	return cellStateNames[s]
}

// MarshalText encodes the state by name.
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state written by MarshalText.
func (s *CellState) UnmarshalText(text []byte) error {
	for i, name := range cellStateNames {
		if name == string(text) {
			*s = CellState(i)
			return nil
		}
	}
	return fmt.Errorf("mines: unknown cell state %q", text)
}

// CellView is the public view of one cell.
type CellView struct {
	State CellState `json:"state"`
	// Value is set for revealed cells only.
	Value Value `json:"value,omitempty"`
	// Exploded marks the mine that lost the game.
	Exploded bool `json:"exploded,omitempty"`
}

// Rune returns the single-character form used by Snapshot.String.
func (v CellView) Rune() rune {
	switch v.State {
	case CellFlagged, CellFlaggedMine:
		return 'F'
	case CellMisflagged:
		return 'x'
	case CellRevealed:
		switch {
		case v.Exploded:
			return 'X'
		case v.Value == Mine:
			return '*'
		case v.Value == 0:
			return '.'
		default:
			return rune('0' + v.Value)
		}
	default:
		return '#'
	}
}

// Snapshot is a copy of a session's visible state. Mutating it does not
// affect the engine.
type Snapshot struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	Mines          int          `json:"mines"`
	FlagsPlaced    int          `json:"flags_placed"`
	MinesRemaining int          `json:"mines_remaining"`
	Phase          Phase        `json:"phase"`
	FirstMoveDone  bool         `json:"first_move_done"`
	Version        uint64       `json:"version"`
	StartedAt      time.Time    `json:"started_at"`
	EndedAt        time.Time    `json:"ended_at"`
	Cells          [][]CellView `json:"cells"`
}

// Cell returns the public view of the cell at c. c must be in bounds.
func (e *Engine) Cell(c Coord) CellView {
	i := e.board.index(c)
	over := e.phase.Over()

	switch {
	case e.flagged[i] && over && e.board.cells[i] == Mine:
		return CellView{State: CellFlaggedMine, Value: Mine}
	case e.flagged[i] && over:
		return CellView{State: CellMisflagged}
	case e.flagged[i]:
		return CellView{State: CellFlagged}
	case e.revealed[i]:
		return CellView{
			State:    CellRevealed,
			Value:    e.board.cells[i],
			Exploded: e.exploded && c == e.trigger,
		}
	default:
		return CellView{State: CellHidden}
	}
}

// Snapshot returns a copy of the visible state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([][]CellView, e.rows)
	for r := range cells {
		row := make([]CellView, e.cols)
		for c := range row {
			row[c] = e.Cell(Coord{Row: r, Col: c})
		}
		cells[r] = row
	}

	return Snapshot{
		Rows:           e.rows,
		Cols:           e.cols,
		Mines:          e.mineCount,
		FlagsPlaced:    e.flagsPlaced,
		MinesRemaining: e.MinesRemaining(),
		Phase:          e.phase,
		FirstMoveDone:  e.firstMoveDone,
		Version:        e.version,
		StartedAt:      e.startedAt,
		EndedAt:        e.endedAt,
		Cells:          cells,
	}
}

// String renders the snapshot as a header line followed by one text row per
// board row: # hidden, F flag, . empty, 1-8 counts, * mine, X exploded mine,
// x wrong flag.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d mines=%d flags=%d phase=%s v=%d\n",
		s.Rows, s.Cols, s.Mines, s.FlagsPlaced, s.Phase, s.Version)
	for _, row := range s.Cells {
		for _, cell := range row {
			b.WriteRune(cell.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
