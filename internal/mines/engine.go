// Package mines implements the state of a single minesweeper session: mine
// placement with a first-click safe zone, adjacency counts, flood-fill
// reveal, flagging with a budget, and the win/loss state machine.
//
// The package is pure. It performs no I/O, starts no goroutines and holds no
// locks; an Engine is owned by one caller at a time. Rendering, input and the
// on-screen timer live in the platform packages, which read Snapshot and
// Elapsed and call Reveal and ToggleFlag.
package mines

import (
	"errors"
	"fmt"
	"time"
)

// Engine holds one session. The zero value is not usable; create engines
// with New.
type Engine struct {
	rows      int
	cols      int
	mineCount int

	board    Board
	revealed []bool
	flagged  []bool

	phase         Phase
	flagsPlaced   int
	firstMoveDone bool
	revealedSafe  int
	trigger       Coord
	exploded      bool

	version   uint64
	startedAt time.Time
	endedAt   time.Time

	placer Placer
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlacer sets the strategy used to lay mines on the first reveal.
func WithPlacer(p Placer) Option {
	return func(e *Engine) {
		e.placer = p
	}
}

// WithSeed uses a ShufflePlacer seeded with seed, which makes layouts
// reproducible for a given first reveal.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.placer = NewShufflePlacer(seed)
	}
}

// WithClock replaces time.Now for start and end stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine and starts a session of the given size.
func New(rows, cols, mineCount int, opts ...Option) (*Engine, error) {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.placer == nil {
		e.placer = NewRandomPlacer()
	}
	if e.now == nil {
		e.now = time.Now
	}

	if err := e.StartSession(rows, cols, mineCount); err != nil {
		return nil, err
	}
	return e, nil
}

// validate checks session dimensions.
func validate(rows, cols, mineCount int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfiguration, rows, cols)
	}
	if mineCount < 1 || mineCount >= rows*cols {
		return fmt.Errorf("%w: mine count %d must be in [1, %d) for a %dx%d board",
			ErrInvalidConfiguration, mineCount, rows*cols, rows, cols)
	}
	return nil
}

// StartSession discards the current session and starts a fresh one. On a
// validation error the current session is left untouched.
func (e *Engine) StartSession(rows, cols, mineCount int) error {
	if err := validate(rows, cols, mineCount); err != nil {
		return err
	}

	e.rows = rows
	e.cols = cols
	e.mineCount = mineCount
	e.board = newBoard(rows, cols)
	e.revealed = make([]bool, rows*cols)
	e.flagged = make([]bool, rows*cols)
	e.phase = PhasePending
	e.flagsPlaced = 0
	e.firstMoveDone = false
	e.revealedSafe = 0
	e.trigger = Coord{}
	e.exploded = false
	e.startedAt = time.Time{}
	e.endedAt = time.Time{}
	e.version++

	return nil
}

// Restart starts a new session with the current dimensions.
func (e *Engine) Restart() error {
	return e.StartSession(e.rows, e.cols, e.mineCount)
}

func (e *Engine) locate(row, col int) (Coord, error) {
	c := Coord{Row: row, Col: col}
	if !e.board.InBounds(c) {
		return c, fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, c, e.rows, e.cols)
	}
	return c, nil
}

// Reveal opens the cell at (row, col).
//
// The first reveal of a session lays the mines outside the 3x3 block around
// the target and starts the clock. Revealing a zero opens its whole region.
// Revealing a mine loses the game; revealing the last safe cell wins it.
// Reveals on flagged or already revealed cells, and any reveal after the
// game ended, are no-ops.
func (e *Engine) Reveal(row, col int) (Result, error) {
	c, err := e.locate(row, col)
	if err != nil {
		return Result{}, err
	}
	if e.phase.Over() {
		return Result{}, nil
	}
	i := e.board.index(c)
	if e.flagged[i] || e.revealed[i] {
		return Result{}, nil
	}

	now := e.now()
	var res Result

	if !e.firstMoveDone {
		if err := e.placeMines(c); err != nil {
			return Result{}, err
		}
		e.firstMoveDone = true
		e.phase = PhaseActive
		e.startedAt = now
		res.Events = append(res.Events, Event{
			Kind:    EventMinesPlaced,
			At:      now,
			Trigger: c,
		})
	}

	res.Changed = true
	res.Revealed = e.flood(c)
	e.version++

	switch {
	case e.board.At(c) == Mine:
		e.trigger = c
		e.exploded = true
		res.Revealed = append(res.Revealed, e.revealMines()...)
		res.Events = append(res.Events, e.finish(PhaseLost, now, c))
	case e.won():
		res.Revealed = append(res.Revealed, e.revealMines()...)
		res.Events = append(res.Events, e.finish(PhaseWon, now, c))
	}

	return res, nil
}

// placeMines asks the placer for a layout and computes adjacency.
func (e *Engine) placeMines(first Coord) error {
	layout, err := e.placer.Place(e.rows, e.cols, e.mineCount, first)
	if err != nil {
		if errors.Is(err, ErrInvalidConfiguration) {
			return err
		}
		return fmt.Errorf("%w: place mines: %v", ErrInvalidConfiguration, err)
	}
	if err := checkLayout(&e.board, layout, e.mineCount); err != nil {
		return err
	}
	e.board.layMines(layout)
	return nil
}

// ToggleFlag flags a hidden cell or removes its flag. Flags can be placed
// before the first reveal. A new flag is refused once as many flags as mines
// are on the board. Flagging revealed cells and any flagging after the game
// ended are no-ops.
func (e *Engine) ToggleFlag(row, col int) (Result, error) {
	c, err := e.locate(row, col)
	if err != nil {
		return Result{}, err
	}
	if e.phase.Over() {
		return Result{}, nil
	}
	i := e.board.index(c)
	if e.revealed[i] {
		return Result{}, nil
	}

	if e.flagged[i] {
		e.flagged[i] = false
		e.flagsPlaced--
	} else {
		if e.flagsPlaced >= e.mineCount {
			return Result{}, nil
		}
		e.flagged[i] = true
		e.flagsPlaced++
	}
	e.version++

	res := Result{Changed: true}
	if e.phase == PhaseActive && e.won() {
		res.Revealed = e.revealMines()
		res.Events = append(res.Events, e.finish(PhaseWon, e.now(), c))
	}
	return res, nil
}

// won reports whether every non-mine cell is revealed.
func (e *Engine) won() bool {
	return e.firstMoveDone && e.revealedSafe == e.rows*e.cols-e.mineCount
}

// revealMines marks every mine revealed and returns the ones that were not.
// Flags are left in place.
func (e *Engine) revealMines() []Coord {
	var opened []Coord
	for i, v := range e.board.cells {
		if v == Mine && !e.revealed[i] {
			e.revealed[i] = true
			opened = append(opened, e.board.coord(i))
		}
	}
	return opened
}

func (e *Engine) finish(phase Phase, now time.Time, trigger Coord) Event {
	e.phase = phase
	e.endedAt = now

	kind := EventWon
	if phase == PhaseLost {
		kind = EventLost
	}
	return Event{
		Kind:    kind,
		At:      now,
		Trigger: trigger,
		Mines:   e.board.mines(),
		Elapsed: e.endedAt.Sub(e.startedAt),
	}
}

// Rows returns the board height.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.cols }

// MineCount returns the number of mines in the session.
func (e *Engine) MineCount() int { return e.mineCount }

// FlagsPlaced returns the number of flagged cells.
func (e *Engine) FlagsPlaced() int { return e.flagsPlaced }

// MinesRemaining returns mines minus flags, the classic counter.
func (e *Engine) MinesRemaining() int { return e.mineCount - e.flagsPlaced }

// Phase returns the session phase.
func (e *Engine) Phase() Phase { return e.phase }

// FirstMoveDone reports whether mines have been placed.
func (e *Engine) FirstMoveDone() bool { return e.firstMoveDone }

// Version increases on every state change, including StartSession.
func (e *Engine) Version() uint64 { return e.version }

// StartedAt returns the time of the first reveal, or the zero time.
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// EndedAt returns the time the game was won or lost, or the zero time.
func (e *Engine) EndedAt() time.Time { return e.endedAt }

// Elapsed returns how long the session has been played as of now. It is
// zero before the first reveal and stops at the end of the game.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	switch {
	case !e.firstMoveDone:
		return 0
	case e.phase.Over():
		return e.endedAt.Sub(e.startedAt)
	}
	if d := now.Sub(e.startedAt); d > 0 {
		return d
	}
	return 0
}

// Mines returns the mine layout in row-major order once the game has ended,
// and nil before that.
func (e *Engine) Mines() []Coord {
	if !e.phase.Over() {
		return nil
	}
	return e.board.mines()
}

// Exploded returns the mine that lost the game.
func (e *Engine) Exploded() (Coord, bool) {
	return e.trigger, e.exploded
}

// Value returns the content of a revealed cell. ok is false for hidden or
// out-of-bounds cells.
func (e *Engine) Value(row, col int) (v Value, ok bool) {
	c := Coord{Row: row, Col: col}
	if !e.board.InBounds(c) {
		return 0, false
	}
	i := e.board.index(c)
	if !e.revealed[i] {
		return 0, false
	}
	return e.board.cells[i], true
}
