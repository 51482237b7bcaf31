package mines

// flood reveals start and, when it is a zero, the connected region of
// zeros around it together with their numbered border. The reveal mask is
// the visited set. Flagged cells are neither revealed nor crossed, and
// mines never propagate. Newly revealed cells are returned in discovery order.
func (e *Engine) flood(start Coord) []Coord {
	var opened []Coord

	stack := []Coord{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := e.board.index(c)
		if e.revealed[i] || e.flagged[i] {
			continue
		}
		e.revealed[i] = true
		opened = append(opened, c)

		v := e.board.cells[i]
		if v == Mine {
			continue
		}
		e.revealedSafe++
		if v != 0 {
			continue
		}

		e.board.eachNeighbor(c, func(n Coord) {
			j := e.board.index(n)
			if !e.revealed[j] && !e.flagged[j] {
				stack = append(stack, n)
			}
		})
	}

	return opened
}
