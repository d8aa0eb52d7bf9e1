// Package warshall implements the classical Warshall transitive-closure
// algorithm over a dense adjacency matrix. It exists purely as an
// independent reference implementation, deliberately kept separate
// from the stacktc core: pkg/stacktc's test suite cross-checks every
// query against this package's output.
package warshall

import "github.com/gitrdm/stacktc/pkg/stacktc"

// Matrix is an n×n boolean adjacency/reachability matrix packed as a
// flat bitset, row-major, 64 bits per word.
type Matrix struct {
	n    int
	bits []uint64
}

func newMatrix(n int) *Matrix {
	words := (n*n + 63) / 64
	if words == 0 {
		words = 1
	}
	return &Matrix{n: n, bits: make([]uint64, words)}
}

func (m *Matrix) index(i, j int) (word, bit int) {
	pos := i*m.n + j
	return pos / 64, pos % 64
}

// Get reports whether M[i][j] is set.
func (m *Matrix) Get(i, j int) bool {
	w, b := m.index(i, j)
	return m.bits[w]&(1<<uint(b)) != 0
}

func (m *Matrix) set(i, j int) {
	w, b := m.index(i, j)
	m.bits[w] |= 1 << uint(b)
}

// N returns the matrix dimension.
func (m *Matrix) N() int {
	return m.n
}

// Closure computes the transitive closure of d's adjacency matrix via
// Warshall's algorithm: M[i][j] is set iff there is a directed path of
// length >= 1 from i to j in d.
func Closure(d *stacktc.Digraph) *Matrix {
	n := d.VertexCount()
	m := newMatrix(n)
	for u := 0; u < n; u++ {
		for _, v := range d.Children(u) {
			m.set(u, v)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !m.Get(i, k) {
				continue
			}
			for j := 0; j < n; j++ {
				if m.Get(k, j) {
					m.set(i, j)
				}
			}
		}
	}
	return m
}
