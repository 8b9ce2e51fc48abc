// SPDX-License-Identifier: MIT

// Package markov analyses discrete Markov chains given by left-stochastic
// transition matrices.
//
// Convention:
//
//	Column j of M is the outgoing distribution of state j: M[i][j] is the
//	probability of moving from state j to state i, so one step maps a
//	distribution p to M·p.
//
// What is here?
//
//	• IsStochastic / ValidateStochastic — square, non-negative, columns sum to 1
//	• StationaryStates  — eigenvectors for eigenvalue 1, scaled to sum 1
//	• Step / Evolve     — distribution after one or n steps
//	• Tetrahedron / ProbabilityOfReturn — random walk on a regular tetrahedron
//	• MatrixToAdjacency — column-keyed view of the transition weights
//	• IsIrreducible     — every state reaches every other state
//
// Numeric policy:
//
//	Column sums are compared exactly unless WithColumnTolerance is given.
//	Eigenvalues match 1 with the numpy.isclose rule |λ-1| <= atol + rtol,
//	defaults rtol = 1e-5, atol = 1e-8 (WithEigenTolerance overrides).
//
// The package performs no I/O and never logs; see cmd/markovctl for a
// command-line consumer.
package markov
