package mines

import "fmt"

// Coord addresses one cell by row and column, both zero-based.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Near reports whether other lies in the clipped 3x3 block centred on c,
// c itself included.
func (c Coord) Near(other Coord) bool {
	return absDiff(c.Row, other.Row) <= 1 && absDiff(c.Col, other.Col) <= 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
