package mines

import "strconv"

// Value is the content of a board cell: Mine, or the number of mines among
// its up to eight neighbours (0..8).
type Value int8

// Mine marks a cell holding a mine.
const Mine Value = -1

// String returns "*" for a mine and the digit otherwise.
func (v Value) String() string {
	if v == Mine {
		return "*"
	}
	return strconv.Itoa(int(v))
}

// neighborOffsets lists the Moore neighbourhood, row-major.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is the hidden layer of a session: where the mines are and the
// adjacency count of every other cell.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Value
}

// newBoard returns an all-zero board.
func newBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Value, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return len(b.cells)
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

func (b *Board) index(c Coord) int {
	return c.Row*b.cols + c.Col
}

func (b *Board) coord(i int) Coord {
	return Coord{Row: i / b.cols, Col: i % b.cols}
}

// At returns the value at c. c must be in bounds.
func (b *Board) At(c Coord) Value {
	return b.cells[b.index(c)]
}

// eachNeighbor calls fn for every in-bounds Moore neighbour of c.
func (b *Board) eachNeighbor(c Coord, fn func(Coord)) {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if b.InBounds(n) {
			fn(n)
		}
	}
}

// Neighbors returns the in-bounds Moore neighbours of c (3 at a corner,
// 5 on an edge, 8 inside).
func (b *Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	b.eachNeighbor(c, func(n Coord) {
		out = append(out, n)
	})
	return out
}

// layMines marks every coordinate in mines as a mine and fills in the
// adjacency counts of the remaining cells.
func (b *Board) layMines(mines []Coord) {
	for i := range b.cells {
		b.cells[i] = 0
	}
	for _, m := range mines {
		b.cells[b.index(m)] = Mine
	}
	for i, v := range b.cells {
		if v == Mine {
			continue
		}
		b.cells[i] = Value(b.countAdjacent(b.coord(i)))
	}
}

// countAdjacent counts mines among the neighbours of c.
func (b *Board) countAdjacent(c Coord) int {
	count := 0
	b.eachNeighbor(c, func(n Coord) {
		if b.cells[b.index(n)] == Mine {
			count++
		}
	})
	return count
}

// mines returns every mine coordinate in row-major order.
func (b *Board) mines() []Coord {
	var out []Coord
	for i, v := range b.cells {
		if v == Mine {
			out = append(out, b.coord(i))
		}
	}
	return out
}
