package engine

import "fmt"

// IsPegged reports whether a peg occupies pos.
func (b Board) IsPegged(pos Position) (bool, error) {
	if !b.contains(pos) {
		return false, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return b.cells[pos].Pegged, nil
}

// LegalMoves returns the currently legal jumps from pos as a destination →
// jumped mapping: those of pos's connections whose destination is empty and
// whose jumped cell holds a peg. Legality depends only on the occupancy of
// the destination and jumped cells; callers interested in moving a peg check
// pos's own occupancy separately.
func (b Board) LegalMoves(pos Position) map[Position]Position {
	moves := make(map[Position]Position)
	if !b.contains(pos) {
		return moves
	}
	for to, over := range b.cells[pos].Jumps {
		if !b.cells[to].Pegged && b.cells[over].Pegged {
			moves[to] = over
		}
	}
	return moves
}

// ValidateMove reports whether jumping from→to is currently legal, returning
// the jumped position when it is. This is the single source of truth for
// move legality.
func (b Board) ValidateMove(from, to Position) (Position, bool) {
	jumped, ok := b.LegalMoves(from)[to]
	return jumped, ok
}

// ApplyMove validates the jump from→to and returns the resulting board: from
// and the jumped cell emptied, to filled, nothing else changed. On an illegal
// move it returns ErrIllegalMove and the input board remains valid and
// unchanged — there is no partial application.
func (b Board) ApplyMove(from, to Position) (Board, error) {
	if !b.contains(from) || !b.contains(to) {
		return Board{}, fmt.Errorf("%w: %d -> %d", ErrInvalidPosition, from, to)
	}
	jumped, ok := b.ValidateMove(from, to)
	if !ok {
		return Board{}, fmt.Errorf("%w: %d -> %d", ErrIllegalMove, from, to)
	}

	next := b.clone()
	next.cells[from].Pegged = false
	next.cells[jumped].Pegged = false
	next.cells[to].Pegged = true
	return next, nil
}

// HasAnyMove reports whether any pegged position still has a legal jump.
// False means the board is terminal.
func (b Board) HasAnyMove() bool {
	for p := Position(1); int(p) <= RowEnd(b.rows); p++ {
		if !b.cells[p].Pegged {
			continue
		}
		for to, over := range b.cells[p].Jumps {
			if !b.cells[to].Pegged && b.cells[over].Pegged {
				return true
			}
		}
	}
	return false
}

// PegCount returns the number of pegs on the board.
func (b Board) PegCount() int {
	count := 0
	for p := 1; p <= RowEnd(b.rows); p++ {
		if b.cells[p].Pegged {
			count++
		}
	}
	return count
}
