// Package lvlalg is a small linear-algebra and Markov-chain toolkit.
//
// What is inside?
//
//	vector/         — Dot, Norm, Normalize, OrthogonalProjection, LargestNorm
//	matrix/         — Dense matrices, Multiply, Transpose, Rotate, complex numbers
//	                  as 2×2 matrices, IsPositiveSemidefinite (gonum-backed eigen)
//	markov/         — stochastic-matrix checks, stationary distributions,
//	                  n-step evolution, the tetrahedron walk, adjacency views
//	cmd/markovctl/  — command-line analysis with JSON report and plot output
//
// Layers depend only downward: markov → matrix → vector. Errors are sentinel
// values shared across layers, so a single errors.Is(err, vector.ErrDimensionMismatch)
// catches a length mismatch wherever it happened.
//
// Quick example:
//
//	m := markov.Tetrahedron()
//	states, _ := markov.StationaryStates(m) // [[0.25 0.25 0.25 0.25]]
//	p, _ := markov.ProbabilityOfReturn(2)   // 1/3
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
