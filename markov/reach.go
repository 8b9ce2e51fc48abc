// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// walker is breadth-first search over the positive-weight edges of an
// adjacency list indexed by state.
type walker struct {
	next    [][]int
	queue   []int
	visited []bool
	order   []int
}

// newWalker allocates state for n vertices with the given successor lists.
func newWalker(next [][]int) *walker {
	n := len(next)
	return &walker{
		next:    next,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		order:   make([]int, 0, n),
	}
}

// run visits every state reachable from start and returns them in visit order.
func (w *walker) run(start int) []int {
	w.enqueue(start)
	for len(w.queue) > 0 {
		s := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, s)
		for _, t := range w.next[s] {
			if !w.visited[t] {
				w.enqueue(t)
			}
		}
	}

	return w.order
}

func (w *walker) enqueue(s int) {
	w.visited[s] = true
	w.queue = append(w.queue, s)
}

// successors builds forward (j→i) and reverse (i→j) lists from the transitions
// with weight > 0. Outgoing lists keep ascending row order.
func successors(a *Adjacency) (fwd, rev [][]int) {
	n := a.Len()
	fwd = make([][]int, n)
	rev = make([][]int, n)
	for j, edges := range a.out {
		for _, e := range edges {
			if e.Weight > 0 {
				fwd[j] = append(fwd[j], e.To)
				rev[e.To] = append(rev[e.To], j)
			}
		}
	}

	return fwd, rev
}

// Reachable lists the states reachable from state from (itself included) in
// breadth-first order along transitions with positive probability.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, matrix.ErrOutOfRange for a bad start state.
func Reachable(m matrix.Matrix, from int) ([]int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, markovErrorf(opReachable, err)
	}
	if from < 0 || from >= m.Rows() {
		return nil, markovErrorf(opReachable, fmt.Errorf("state %d: %w", from, matrix.ErrOutOfRange))
	}
	a, err := MatrixToAdjacency(m)
	if err != nil {
		return nil, markovErrorf(opReachable, err)
	}
	fwd, _ := successors(a)

	return newWalker(fwd).run(from), nil
}

// IsIrreducible reports whether every state can reach every other state along
// transitions with positive probability. An irreducible stochastic matrix has
// exactly one stationary distribution.
//
// Implementation:
//   - Stage 1: build forward and reverse successor lists from the Adjacency.
//   - Stage 2: BFS from state 0 on both; irreducible iff each reaches all n
//     states (0 reaches everything and everything reaches 0).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func IsIrreducible(m matrix.Matrix) (bool, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return false, markovErrorf(opIrreducible, err)
	}
	a, err := MatrixToAdjacency(m)
	if err != nil {
		return false, markovErrorf(opIrreducible, err)
	}
	n := a.Len()
	fwd, rev := successors(a)
	if len(newWalker(fwd).run(0)) != n {
		return false, nil
	}

	return len(newWalker(rev).run(0)) == n, nil
}
