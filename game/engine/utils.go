package engine

import "sort"

// MovablePegs returns every pegged position with at least one legal jump, in
// ascending order.
func MovablePegs(b Board) []Position {
	var pegs []Position
	for p := Position(1); int(p) <= RowEnd(b.Rows()); p++ {
		pegged, _ := b.IsPegged(p)
		if pegged && len(b.LegalMoves(p)) > 0 {
			pegs = append(pegs, p)
		}
	}
	return pegs
}

// ConnectionCount returns the total number of directed jump connections
// recorded on the board. By symmetry it is always even.
func ConnectionCount(b Board) int {
	total := 0
	for p := Position(1); int(p) <= RowEnd(b.Rows()); p++ {
		total += len(b.Connections(p))
	}
	return total
}

// CornerPositions returns the three corners of the triangle: position 1 and
// the two ends of the bottom row.
func CornerPositions(rows int) []Position {
	if rows < MinRows {
		return nil
	}
	corners := []Position{1, Position(RowEnd(rows-1) + 1), Position(RowEnd(rows))}
	sort.Slice(corners, func(i, j int) bool { return corners[i] < corners[j] })
	// rows == 1 collapses all three onto position 1
	out := corners[:0]
	var last Position
	for _, c := range corners {
		if len(out) == 0 || c != last {
			out = append(out, c)
			last = c
		}
	}
	return out
}

// PeggedPositions lists every pegged position in ascending order.
func PeggedPositions(b Board) []Position {
	var pegs []Position
	for p := Position(1); int(p) <= RowEnd(b.Rows()); p++ {
		if pegged, _ := b.IsPegged(p); pegged {
			pegs = append(pegs, p)
		}
	}
	return pegs
}
