package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard_InvalidRows(t *testing.T) {
	for _, rows := range []int{0, -1, -10} {
		_, err := NewBoard(rows)
		require.ErrorIs(t, err, ErrInvalidRows, "rows=%d", rows)
	}
}

// TestNewBoard_PositionCount verifies that a rows-row board holds exactly
// tri(rows) positions, all initially pegged.
func TestNewBoard_PositionCount(t *testing.T) {
	for rows := 1; rows <= 8; rows++ {
		b, err := NewBoard(rows)
		require.NoError(t, err)
		require.Equal(t, RowEnd(rows), int(b.MaxPos()))
		require.Equal(t, RowEnd(rows), b.PegCount(), "rows=%d", rows)
		for p := Position(1); p <= b.MaxPos(); p++ {
			pegged, err := b.IsPegged(p)
			require.NoError(t, err)
			require.True(t, pegged, "position %d should start pegged", p)
		}
	}
}

// TestNewBoard_Symmetry verifies that every jump is recorded in both
// directions over the same jumped cell.
func TestNewBoard_Symmetry(t *testing.T) {
	b, err := NewBoard(6)
	require.NoError(t, err)

	for p := Position(1); p <= b.MaxPos(); p++ {
		for to, over := range b.Connections(p) {
			back, ok := b.Connections(to)[p]
			require.True(t, ok, "connection %d->%d has no mirror", p, to)
			require.Equal(t, over, back, "mirror of %d->%d jumps a different cell", p, to)
		}
	}
}

// TestNewBoard_NoDanglingConnections verifies that every destination and
// jumped cell lies on the board.
func TestNewBoard_NoDanglingConnections(t *testing.T) {
	for _, rows := range []int{1, 2, 3, 5, 7} {
		b, err := NewBoard(rows)
		require.NoError(t, err)
		maxPos := b.MaxPos()
		for p := Position(1); p <= maxPos; p++ {
			for to, over := range b.Connections(p) {
				require.True(t, to >= 1 && to <= maxPos, "rows=%d: %d->%d dangles", rows, p, to)
				require.True(t, over >= 1 && over <= maxPos, "rows=%d: %d over %d dangles", rows, p, over)
			}
		}
	}
}

// TestNewBoard_ConnectionGraph pins the exact graph for a handful of 5-row
// positions, covering the row-boundary exclusion for rightward jumps.
func TestNewBoard_ConnectionGraph(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	want := map[Position]map[Position]Position{
		// Top corner: no rightward jump (1 ends row 1), both downward jumps.
		1: {4: 2, 6: 3},
		// Row-3 start: right along the row plus both downward, and the
		// mirror of 1's down-left.
		4: {6: 5, 11: 7, 13: 8, 1: 2},
		// 5's right neighbor 6 ends row 3, so 5->7 must not exist.
		5: {12: 8, 14: 9},
		// Bottom row: rightward jumps only, no downward geometry left.
		11: {13: 12, 4: 7},
		15: {13: 14, 6: 10},
	}
	for pos, conns := range want {
		require.Equal(t, conns, b.Connections(pos), "connections of %d", pos)
	}
}

func TestNewBoard_SingleRow(t *testing.T) {
	b, err := NewBoard(1)
	require.NoError(t, err)
	require.Equal(t, Position(1), b.MaxPos())
	require.Empty(t, b.Connections(1))
	require.False(t, b.HasAnyMove())
}

// TestRemovePeg_ValueSemantics verifies that removing a peg yields a new
// board and leaves the original untouched.
func TestRemovePeg_ValueSemantics(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	opened, err := b.RemovePeg(1)
	require.NoError(t, err)

	pegged, err := opened.IsPegged(1)
	require.NoError(t, err)
	require.False(t, pegged)

	stillPegged, err := b.IsPegged(1)
	require.NoError(t, err)
	require.True(t, stillPegged, "original board must be unchanged")

	_, err = b.RemovePeg(16)
	require.ErrorIs(t, err, ErrInvalidPosition)
}

func TestPlacePeg(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)

	opened, err := b.RemovePeg(5)
	require.NoError(t, err)
	restored, err := opened.PlacePeg(5)
	require.NoError(t, err)

	pegged, err := restored.IsPegged(5)
	require.NoError(t, err)
	require.True(t, pegged)

	_, err = opened.PlacePeg(0)
	require.ErrorIs(t, err, ErrInvalidPosition)
}
