package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTriangulars_FirstTerms verifies the opening of the sequence.
func TestTriangulars_FirstTerms(t *testing.T) {
	want := []int{1, 3, 6, 10, 15, 21, 28, 36}
	var got []int
	for tri := range Triangulars() {
		got = append(got, tri)
		if len(got) == len(want) {
			break
		}
	}
	require.Equal(t, want, got)
}

// TestTriangulars_Restartable verifies that every call yields an independent
// sequence from the start.
func TestTriangulars_Restartable(t *testing.T) {
	first := func() int {
		for tri := range Triangulars() {
			return tri
		}
		return 0
	}
	require.Equal(t, 1, first())
	require.Equal(t, 1, first(), "second iteration must restart at 1")
}

func TestIsTriangular(t *testing.T) {
	for _, n := range []int{1, 3, 6, 10, 15, 21, 28, 120} {
		require.True(t, IsTriangular(n), "IsTriangular(%d)", n)
	}
	for _, n := range []int{0, -3, 2, 4, 5, 7, 11, 14, 16, 119} {
		require.False(t, IsTriangular(n), "IsTriangular(%d)", n)
	}
}

func TestRowEnd(t *testing.T) {
	cases := map[int]int{0: 0, -1: 0, 1: 1, 2: 3, 3: 6, 4: 10, 5: 15, 10: 55}
	for n, want := range cases {
		require.Equal(t, want, RowEnd(n), "RowEnd(%d)", n)
	}
}

func TestRowOf(t *testing.T) {
	cases := map[Position]int{
		1: 1,
		2: 2, 3: 2,
		4: 3, 5: 3, 6: 3,
		7: 4, 10: 4,
		11: 5, 15: 5,
	}
	for pos, want := range cases {
		require.Equal(t, want, RowOf(pos), "RowOf(%d)", pos)
	}
}
