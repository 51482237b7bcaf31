package minesweeper

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Glyphs.
const (
	glyphHidden     = '■'
	glyphFlag       = '⚑'
	glyphMine       = '*'
	glyphExploded   = '✹'
	glyphMisflagged = '✗'
	glyphEmpty      = '·'
)

// numberColors follows the classic palette, index = adjacent mine count.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorNavy,
	core.ColorMaroon,
	core.ColorTeal,
	core.ColorMagenta,
	core.ColorGray,
}

var (
	styleHidden   = core.Fg(core.ColorDarkGray)
	styleFlag     = core.Style{Fg: core.ColorBrightRed, Bold: true}
	styleMine     = core.Style{Fg: core.ColorWhite, Bold: true}
	styleExploded = core.Style{Fg: core.ColorBrightYellow, Bg: core.ColorRed, Bold: true}
	styleBorder   = core.Fg(core.ColorGray)
	styleHUD      = core.Fg(core.ColorCyan)
	styleWon      = core.Style{Fg: core.ColorBrightGreen, Bold: true}
	styleLost     = core.Style{Fg: core.ColorBrightRed, Bold: true}
	styleHint     = core.Fg(core.ColorGray)
	styleCursorBg = core.ColorGray
)

// boardSize returns the size of the framed board in screen cells.
func (g *Game) boardSize() (int, int) {
	return g.engine.Cols()*cellWidth + 3, g.engine.Rows() + 2
}

func (g *Game) boardRect() core.Rect {
	w, h := g.boardSize()
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		w, h := g.boardSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", styleLost)
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("need %dx%d, have %dx%d", w, h+hudHeight+footerHeight, g.screenW, g.screenH), styleHint)
		return
	}

	g.renderHUD(dst)

	box := g.boardRect()
	dst.DrawBox(box, styleBorder)

	if g.paused {
		dst.DrawTextCentered(box.Y+box.H/2, "PAUSED", styleHUD)
	} else {
		g.renderCells(dst, box)
	}

	g.renderFooter(dst, box.Bottom())
}

func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	status := fmt.Sprintf("Mines: %3d   Flags: %d/%d   Time: %s",
		e.MinesRemaining(), e.FlagsPlaced(), e.MineCount(), clock(g.elapsed))
	dst.DrawTextCentered(0, status, styleHUD)
}

func (g *Game) renderCells(dst *core.Screen, box core.Rect) {
	for r := range g.engine.Rows() {
		for c := range g.engine.Cols() {
			coord := mines.C(r, c)
			glyph, st := cellGlyph(g.engine.Cell(coord))
			if coord == g.cursor && !g.engine.Phase().Over() {
				st.Bg = styleCursorBg
			}
			dst.SetStyled(box.X+2+c*cellWidth, box.Y+1+r, glyph, st)
		}
	}
}

// cellGlyph returns how a cell is drawn.
func cellGlyph(v mines.CellView) (rune, core.Style) {
	switch v.State {
	case mines.CellFlagged, mines.CellFlaggedMine:
		return glyphFlag, styleFlag
	case mines.CellMisflagged:
		return glyphMisflagged, styleFlag
	case mines.CellRevealed:
		switch {
		case v.Exploded:
			return glyphExploded, styleExploded
		case v.Value == mines.Mine:
			return glyphMine, styleMine
		case v.Value == 0:
			return glyphEmpty, styleHidden
		default:
			return rune('0' + v.Value), core.Style{Fg: numberColors[v.Value], Bold: true}
		}
	default:
		return glyphHidden, styleHidden
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch g.engine.Phase() {
	case mines.PhaseWon:
		dst.DrawTextCentered(y, fmt.Sprintf("You win! Time: %s seconds", seconds(g.elapsed)), styleWon)
	case mines.PhaseLost:
		dst.DrawTextCentered(y, fmt.Sprintf("BOOM! Game over after %s seconds", seconds(g.elapsed)), styleLost)
	default:
		if msg := g.errorText(); msg != "" {
			dst.DrawTextCentered(y, msg, styleLost)
			return
		}
		if !g.engine.FirstMoveDone() {
			dst.DrawTextCentered(y, "Open any cell to start", styleHint)
		}
	}
}

// clock formats whole seconds for the HUD.
func clock(d time.Duration) string {
	return fmt.Sprintf("%03d", int(d/time.Second))
}

// seconds formats a duration with one decimal.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}
