// SPDX-License-Identifier: MIT
package markov_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/markov"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ExampleProbabilityOfReturn prints the first return probabilities of the
// tetrahedron walk.
func ExampleProbabilityOfReturn() {
	for n := 0; n <= 3; n++ {
		p, _ := markov.ProbabilityOfReturn(n)
		fmt.Printf("n=%d p=%.4f\n", n, p)
	}
	// Output:
	// n=0 p=1.0000
	// n=1 p=0.0000
	// n=2 p=0.3333
	// n=3 p=0.2222
}

// ExampleStationaryStates finds the uniform distribution of the tetrahedron walk.
func ExampleStationaryStates() {
	states, _ := markov.StationaryStates(markov.Tetrahedron())
	fmt.Printf("%d state(s): %.2f\n", len(states), states[0])
	// Output:
	// 1 state(s): [0.25 0.25 0.25 0.25]
}

// ExampleIsStochastic rejects a column that sums to 0.999999.
func ExampleIsStochastic() {
	good, _ := matrix.NewFromRows([][]float64{{0.5, 0.25}, {0.5, 0.75}})
	bad, _ := matrix.NewFromRows([][]float64{{0.5, 0.5}, {0.499999, 0.5}})
	fmt.Println(markov.IsStochastic(good), markov.IsStochastic(bad))
	// Output:
	// true false
}

// ExampleMatrixToAdjacency shows the column-keyed view.
func ExampleMatrixToAdjacency() {
	m, _ := matrix.NewFromRows([][]float64{{0.5, 0.25}, {0.5, 0.75}})
	a, _ := markov.MatrixToAdjacency(m)
	fmt.Println(a)
	// Output:
	// {0: [(0, 0.5), (1, 0.5)], 1: [(0, 0.25), (1, 0.75)]}
}
