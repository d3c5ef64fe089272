package engine

import "iter"

// Triangulars returns the infinite sequence of triangular numbers
// 1, 3, 6, 10, 15, … where the k-th term is the sum of 1..k. The sequence is
// lazy and restartable: each call yields an independent iteration from the
// start.
func Triangulars() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k, sum := 1, 0; ; k++ {
			sum += k
			if !yield(sum) {
				return
			}
		}
	}
}

// IsTriangular reports whether n appears in the triangular sequence.
func IsTriangular(n int) bool {
	for t := range Triangulars() {
		if t >= n {
			return t == n
		}
	}
	return false
}

// RowEnd returns the triangular number ending row n, i.e. the last position
// in that row. RowEnd(0) is 0, the boundary used by row 1's geometry.
func RowEnd(n int) int {
	if n < 1 {
		return 0
	}
	return n * (n + 1) / 2
}

// RowOf returns the row containing pos: the smallest r with pos <= RowEnd(r).
func RowOf(pos Position) int {
	r := 1
	for RowEnd(r) < int(pos) {
		r++
	}
	return r
}
