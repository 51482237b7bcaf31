package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"slices"
)

// Placer decides where the mines of a session go. It is called once, on
// the first reveal, with the coordinate the player opened.
type Placer interface {
	Place(rows, cols, mineCount int, safe Coord) ([]Coord, error)
}

// ShufflePlacer picks mines uniformly among the cells outside the safe zone
// (the clipped 3x3 block around the first reveal).
type ShufflePlacer struct {
	rng *rand.Rand
}

// NewShufflePlacer returns a placer whose layouts are fully determined by seed.
func NewShufflePlacer(seed uint64) *ShufflePlacer {
	return &ShufflePlacer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRandomPlacer returns a placer seeded from runtime entropy.
func NewRandomPlacer() *ShufflePlacer {
	return &ShufflePlacer{
		rng: rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		)),
	}
}

// Place shuffles the list of eligible cells and takes the first mineCount.
// It always terminates; a request that cannot fit outside the safe zone is
// rejected with ErrInvalidConfiguration.
func (p *ShufflePlacer) Place(rows, cols, mineCount int, safe Coord) ([]Coord, error) {
	candidates := make([]Coord, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			c := Coord{Row: row, Col: col}
			if !safe.Near(c) {
				candidates = append(candidates, c)
			}
		}
	}

	if mineCount > len(candidates) {
		return nil, fmt.Errorf(
			"%w: %d mines do not fit outside the safe zone around %s (%d eligible cells)",
			ErrInvalidConfiguration, mineCount, safe, len(candidates),
		)
	}

	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:mineCount:mineCount], nil
}

// FixedPlacer returns a predetermined layout. It ignores the safe zone, so
// tests and replays can put a mine anywhere, including under the first reveal.
type FixedPlacer []Coord

// Place returns a copy of the layout, which must hold exactly mineCount mines.
func (p FixedPlacer) Place(rows, cols, mineCount int, _ Coord) ([]Coord, error) {
	if len(p) != mineCount {
		return nil, fmt.Errorf(
			"%w: fixed layout has %d mines, session expects %d",
			ErrInvalidConfiguration, len(p), mineCount,
		)
	}
	return slices.Clone(p), nil
}

// checkLayout verifies that a placer returned mineCount distinct in-bounds cells.
func checkLayout(b *Board, layout []Coord, mineCount int) error {
	if len(layout) != mineCount {
		return fmt.Errorf("%w: placer returned %d mines, want %d",
			ErrInvalidConfiguration, len(layout), mineCount)
	}
	seen := make(map[Coord]bool, len(layout))
	for _, c := range layout {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: mine at %s outside %dx%d board",
				ErrInvalidConfiguration, c, b.rows, b.cols)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfiguration, c)
		}
		seen[c] = true
	}
	return nil
}
