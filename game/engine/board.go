package engine

import "fmt"

// NewBoard builds a fully pegged board with rows rows and its complete
// jump-connection graph. The graph is symmetric: whenever A can jump over B
// into C, C can jump over B back into A, and every recorded destination lies
// on the board.
func NewBoard(rows int) (Board, error) {
	if rows < MinRows {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidRows, rows)
	}

	maxPos := RowEnd(rows)
	cells := make([]Cell, maxPos+1)
	for p := 1; p <= maxPos; p++ {
		cells[p] = Cell{Pegged: true, Jumps: make(map[Position]Position)}
	}
	b := Board{rows: rows, cells: cells}

	for p := Position(1); int(p) <= maxPos; p++ {
		// Right: skip when either the origin or its neighbor ends a row,
		// otherwise the jump would wrap onto the next row.
		if !isRowBoundary(p) && !isRowBoundary(p+1) {
			b.connect(p, p+1, p+2)
		}

		r := Position(RowOf(p))
		b.connect(p, p+r, p+2*r+1)   // down-left
		b.connect(p, p+r+1, p+2*r+3) // down-right
	}

	return b, nil
}

// isRowBoundary reports whether pos is the last position of its row. Jumps to
// the right never cross such a position.
func isRowBoundary(pos Position) bool {
	return IsTriangular(int(pos))
}

// connect records the jump from→to over the given peg, and its mirror, unless
// the destination falls off the board. Omitting out-of-range destinations is
// how board edges are realized; there is no edge sentinel.
func (b Board) connect(from, over, to Position) {
	if int(to) > RowEnd(b.rows) {
		return
	}
	b.cells[from].Jumps[to] = over
	b.cells[to].Jumps[from] = over
}

// clone copies the occupancy arena. Jump maps are immutable after NewBoard
// and stay shared between board values.
func (b Board) clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cells: cells}
}

// contains reports whether pos is a valid position on this board.
func (b Board) contains(pos Position) bool {
	return pos >= 1 && int(pos) <= RowEnd(b.rows)
}

// RemovePeg returns a board with the peg at pos removed. Used to open the
// starting hole.
func (b Board) RemovePeg(pos Position) (Board, error) {
	if !b.contains(pos) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	next := b.clone()
	next.cells[pos].Pegged = false
	return next, nil
}

// PlacePeg returns a board with a peg placed at pos. Used when restoring a
// persisted board.
func (b Board) PlacePeg(pos Position) (Board, error) {
	if !b.contains(pos) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	next := b.clone()
	next.cells[pos].Pegged = true
	return next, nil
}

// Connections returns the geometric jump map recorded for pos, independent of
// occupancy. The returned map must not be modified.
func (b Board) Connections(pos Position) map[Position]Position {
	if !b.contains(pos) {
		return nil
	}
	return b.cells[pos].Jumps
}
